package intersect

import (
	"math"
	"sort"

	"github.com/arrowlat/densefsa/fsa"
	"github.com/arrowlat/densefsa/kernel"
	"github.com/arrowlat/densefsa/ordered"
	"github.com/arrowlat/densefsa/ragged"
	"github.com/samber/lo"
)

// activeCountsPerSeq returns, for each sequence, the number of active
// states shape's axis1 currently lists — the "active" signal
// getPruningCutoffs' dynamic-beam rule reacts to.
func activeCountsPerSeq(shape *ragged.Shape) []int32 {
	splits := shape.RowSplits(1)
	out := make([]int32, len(splits)-1)
	for i := range out {
		out[i] = splits[i+1] - splits[i]
	}
	return out
}

// keptCandidate is one kept arc's (destination, arc-index) pair within a
// single sequence, the unit spec.md §4.5 step 4 dedupes by destination.
type keptCandidate struct {
	arcIdx int32
	dest   int32
}

// propagateForward runs one forward-propagation step (spec.md §4.5):
// expand cur's states into arcs, compute per-sequence cutoffs, prune,
// dedupe surviving destinations into the next frame's state set, and
// resolve each kept arc's Dest from a graph-state candidate to a
// resolved index into that state set. cur.Arcs is populated as a side
// effect; beams is updated in place.
func propagateForward(ctx *kernel.Context, t int32, cur *FrameInfo, aFsas fsa.FsaVec, bFsas fsa.DenseEmissions, beams []float32, opts Options) FrameInfo {
	arcs := getArcs(ctx, t, *cur, aFsas, bFsas)
	cutoffs := getPruningCutoffs(arcs, activeCountsPerSeq(cur.States.Shape), beams, opts)

	numSeqs := cur.States.Shape.Dim0()
	stateSeq := cur.States.Shape.RowIds(1)
	arcStateIdx := arcs.Shape.RowIds(2)

	perSeq := make([][]keptCandidate, numSeqs)
	for a := range arcs.Values {
		ai := &arcs.Values[a]
		seq := stateSeq[arcStateIdx[a]]

		if ai.EndLoglike < cutoffs[seq] {
			ai.Dest = destState{Kind: destPruned}
			continue
		}

		g := aFsas.GraphIndex(seq)
		final := aFsas.FinalState(g)
		tSeq := bFsas.FrameCount(seq)
		if ai.Dest.Value == final && t+1 < tSeq {
			ai.Dest = destState{Kind: destPruned}
			continue
		}

		perSeq[seq] = append(perSeq[seq], keptCandidate{arcIdx: int32(a), dest: ai.Dest.Value})
	}

	// Dedupe kept destinations per sequence (spec.md §4.5 step 4: number
	// the kept arcs, pair each with its destination, sort/dedup by
	// destination within the sequence).
	newRowSplits := make([]int32, numSeqs+1)
	newStates := make([]StateInfo, 0)
	destToNewIdx := make([]map[int32]int32, numSeqs)
	negInf := ordered.ToOrdered(float32(math.Inf(-1)))
	for seq := int32(0); seq < numSeqs; seq++ {
		newRowSplits[seq] = int32(len(newStates))
		cands := perSeq[seq]
		destToNewIdx[seq] = map[int32]int32{}
		if len(cands) == 0 {
			continue
		}
		dests := lo.Uniq(lo.Map(cands, func(c keptCandidate, _ int) int32 { return c.dest }))
		sort.Slice(dests, func(i, j int) bool { return dests[i] < dests[j] })
		for _, d := range dests {
			destToNewIdx[seq][d] = int32(len(newStates))
			newStates = append(newStates, StateInfo{AFsasState: d, ForwardLoglike: negInf})
		}
	}
	newRowSplits[numSeqs] = int32(len(newStates))

	// Resolve each kept arc's Dest and atomic-max its end_loglike into
	// the new state's forward_loglike; disjoint arcs racing for the same
	// destination are the one place this module needs synchronization.
	kernel.Run(ctx, len(arcs.Values), func(a int) {
		ai := &arcs.Values[a]
		if ai.Dest.Kind == destPruned {
			return
		}
		seq := stateSeq[arcStateIdx[a]]
		newIdx := destToNewIdx[seq][ai.Dest.Value]
		ordered.AtomicMaxInto(&newStates[newIdx].ForwardLoglike, ai.EndLoglike)
		// Value is the flat idx into next_frame.States.Values (spec.md
		// §4.5's "dest_info_state_idx1", represented here as a flat
		// index rather than a per-sequence-local one).
		ai.Dest = destState{Kind: destResolved, Value: newIdx}
	})

	cur.Arcs = arcs

	shape, err := ragged.NewShape(numSeqs, newRowSplits)
	if err != nil {
		// newRowSplits is built as a monotone prefix count above; this
		// cannot fail validation.
		panic(err)
	}
	return FrameInfo{States: ragged.Ragged[StateInfo]{Shape: shape, Values: newStates}}
}
