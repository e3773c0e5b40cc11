package intersect

import (
	"math"

	"github.com/arrowlat/densefsa/fsa"
	"github.com/arrowlat/densefsa/kernel"
	"github.com/arrowlat/densefsa/ordered"
)

// propagateBackward runs one backward-propagation step (spec.md §4.6):
// compute cur.States[*].BackwardLoglike and write the oshape_unpruned
// keep-masks for cur's states and arcs. next is nil when cur is the
// last frame held (t == T); cur.Arcs is always empty in that case, so
// the arc pass below never dereferences it.
//
// stateGlobalIdx/arcGlobalIdx map cur's local state/arc indices to their
// flat position under oshape_unpruned, the coordinate space stateKeep
// and arcKeep are addressed in.
func propagateBackward(ctx *kernel.Context, cur *FrameInfo, next *FrameInfo, aFsas fsa.FsaVec, opts Options, stateGlobalIdx, arcGlobalIdx []int32, stateKeep, arcKeep []bool) {
	negInf := float32(math.Inf(-1))
	stateSeq := cur.States.Shape.RowIds(1)
	arcSplits := cur.Arcs.Shape.RowSplits(2)

	arcBackward := make([]float32, len(cur.Arcs.Values))
	kernel.Run(ctx, len(cur.Arcs.Values), func(a int) {
		ai := cur.Arcs.Values[a]
		if ai.Dest.Kind != destResolved {
			arcBackward[a] = negInf
			return
		}
		arcBackward[a] = ai.ArcLoglike + next.States.Values[ai.Dest.Value].BackwardLoglike
	})

	kernel.Run(ctx, len(cur.States.Values), func(i int) {
		s := &cur.States.Values[i]
		seq := stateSeq[i]
		g := aFsas.GraphIndex(seq)
		fwd := ordered.FromOrdered(s.ForwardLoglike)

		start, end := arcSplits[i], arcSplits[i+1]
		var backward float32
		if s.AFsasState == aFsas.FinalState(g) {
			backward = -fwd
		} else {
			backward = negInf
			for a := start; a < end; a++ {
				if arcBackward[a] > backward {
					backward = arcBackward[a]
				}
			}
		}

		keptState := backward+fwd >= -opts.OutputBeam
		if keptState {
			s.BackwardLoglike = backward
		} else {
			s.BackwardLoglike = negInf
		}
		stateKeep[stateGlobalIdx[i]] = keptState

		for a := start; a < end; a++ {
			ai := cur.Arcs.Values[a]
			kept := ai.Dest.Kind == destResolved && arcBackward[a]+fwd >= -opts.OutputBeam
			arcKeep[arcGlobalIdx[a]] = kept
		}
	})
}
