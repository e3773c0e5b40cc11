package intersect

import (
	"fmt"

	"github.com/arrowlat/densefsa/fsa"
	"github.com/arrowlat/densefsa/kernel"
	"github.com/arrowlat/densefsa/ordered"
	"github.com/arrowlat/densefsa/ragged"
)

// validateLabels checks spec.md §6's "every label referenced by a graph
// arc satisfies 0 <= label+1 < columns" precondition once, up front,
// instead of re-checking it on every frame's arc expansion.
func validateLabels(aFsas fsa.FsaVec, columns int32) error {
	for i, a := range aFsas.Values {
		if a.Label+1 < 0 || a.Label+1 >= columns {
			return fmt.Errorf("%w: arc %d has label %d, columns=%d", ErrLabelOutOfRange, i, a.Label, columns)
		}
	}
	return nil
}

// getArcs expands every state in frame into its out-arcs (spec.md §4.3),
// scoring each against bFsas' frame-t row. It is the one place the
// forward pass reads emission scores, so it is the natural site to run
// under the kernel.Run SPMD primitive: each state's expansion writes to
// a disjoint slice of arcInfos, requiring no synchronization.
func getArcs(ctx *kernel.Context, t int32, frame FrameInfo, aFsas fsa.FsaVec, bFsas fsa.DenseEmissions) ragged.Ragged[ArcInfo] {
	states := frame.States.Values
	numStates := len(states)
	stateSeq := frame.States.Shape.RowIds(1)
	arcGraphSplits := aFsas.Shape.RowSplits(2)

	outCounts := make([]int32, numStates)
	for i, s := range states {
		outCounts[i] = arcGraphSplits[s.AFsasState+1] - arcGraphSplits[s.AFsasState]
	}
	rowSplits2 := ragged.ExclusiveSum(outCounts)
	arcInfos := make([]ArcInfo, rowSplits2[numStates])

	kernel.Run(ctx, numStates, func(i int) {
		s := states[i]
		seq := stateSeq[i]
		start, end := arcGraphSplits[s.AFsasState], arcGraphSplits[s.AFsasState+1]
		out := rowSplits2[i]
		for a := start; a < end; a++ {
			arc := aFsas.Values[a]
			arcLL := bFsas.Score(seq, t, arc.Label) + arc.Score
			endLL := ordered.FromOrdered(s.ForwardLoglike) + arcLL
			destG := s.AFsasState + (arc.Dest - arc.Src)
			arcInfos[out] = ArcInfo{
				AFsasArc:   a,
				ArcLoglike: arcLL,
				EndLoglike: endLL,
				Dest:       destState{Kind: destCandidate, Value: destG},
			}
			out++
		}
	})

	shape, err := ragged.NewShape(frame.States.Shape.Dim0(), frame.States.Shape.RowSplits(1), rowSplits2)
	if err != nil {
		// rowSplits2 is an exclusive sum over frame.States' own axis-1
		// row-splits' shape, so composition cannot fail validation.
		panic(err)
	}
	return ragged.Ragged[ArcInfo]{Shape: shape, Values: arcInfos}
}
