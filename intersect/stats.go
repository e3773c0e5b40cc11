package intersect

import (
	"fmt"

	"github.com/arrowlat/densefsa/fsa"
)

// ActiveCounts exposes, for one frame, the number of active states per
// sequence — the same signal getPruningCutoffs consumes internally to
// decide whether to loosen or tighten the beam. Useful as an
// observability hook without reaching into unexported frame internals.
func ActiveCounts(frame FrameInfo) []int32 {
	return activeCountsPerSeq(frame.States.Shape)
}

// ValidateArcMaps cross-checks a pruned output lattice against its arc
// maps (spec.md §8 property 4): every output arc's label and score must
// match the originating graph arc (via arcMapA) composed with the
// originating emission score (via arcMapB). Returns the first mismatch
// found, or nil if every output arc checks out.
func ValidateArcMaps(out fsa.FsaVec, arcMapA, arcMapB []int32, aFsas fsa.FsaVec, bFsas fsa.DenseEmissions) error {
	if len(out.Values) != len(arcMapA) || len(out.Values) != len(arcMapB) {
		return fmt.Errorf("%w: out has %d arcs, arcMapA has %d, arcMapB has %d",
			ErrArcMapLengthMismatch, len(out.Values), len(arcMapA), len(arcMapB))
	}

	columns := bFsas.Columns()
	for i, outArc := range out.Values {
		srcArc := aFsas.Values[arcMapA[i]]
		if outArc.Label != srcArc.Label {
			return fmt.Errorf("%w: arc %d label %d != source arc %d label %d",
				ErrArcMapLabelMismatch, i, outArc.Label, arcMapA[i], srcArc.Label)
		}

		row, col := arcMapB[i]/columns, arcMapB[i]%columns
		emission := float32(bFsas.Scores.At(int(row), int(col)))
		wantScore := srcArc.Score + emission
		if outArc.Score != wantScore {
			return fmt.Errorf("%w: arc %d score %v != %v (graph %v + emission %v)",
				ErrArcMapScoreMismatch, i, outArc.Score, wantScore, srcArc.Score, emission)
		}
	}
	return nil
}
