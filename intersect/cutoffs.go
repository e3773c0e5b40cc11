package intersect

import (
	"math"

	"github.com/arrowlat/densefsa/ragged"
)

// getPruningCutoffs computes the per-sequence pruning cutoff for one
// frame's expanded arcs and updates beams in place (spec.md §4.4).
// activeCounts[seq] is the number of active states cur_frame had going
// into this frame, the signal the dynamic-beam controller reacts to.
func getPruningCutoffs(arcs ragged.Ragged[ArcInfo], activeCounts []int32, beams []float32, opts Options) []float32 {
	flatSplits := ragged.FlattenTwoAxes(arcs.Shape)
	numSeqs := len(flatSplits) - 1

	endScores := make([]float32, len(arcs.Values))
	for i, a := range arcs.Values {
		endScores[i] = a.EndLoglike
	}

	negInf := float32(math.Inf(-1))
	flatShape, err := ragged.NewShape(arcs.Shape.Dim0(), flatSplits)
	if err != nil {
		// flatSplits is FlattenTwoAxes' composition of two already-valid
		// row-splits arrays; this cannot fail validation.
		panic(err)
	}
	best := ragged.MaxPerSublist(flatShape, 1, endScores, negInf)

	cutoffs := make([]float32, numSeqs)
	for seq := 0; seq < numSeqs; seq++ {
		active := activeCounts[seq]
		beam := beams[seq]
		switch {
		case active <= opts.MaxActive && (active >= opts.MinActive || active == 0):
			beam = 0.8*beam + 0.2*opts.SearchBeam
		case active <= opts.MaxActive:
			if beam < opts.SearchBeam {
				beam = opts.SearchBeam
			}
			beam *= 1.25
		default:
			if beam > opts.SearchBeam {
				beam = opts.SearchBeam
			}
			beam *= 0.9
		}
		beams[seq] = beam
		cutoffs[seq] = best[seq] - beam
	}
	return cutoffs
}
