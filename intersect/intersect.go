package intersect

import (
	"fmt"

	"github.com/arrowlat/densefsa/fsa"
	"github.com/arrowlat/densefsa/kernel"
)

// IntersectDensePruned computes the beam-pruned product automaton of
// aFsas against the dense emission matrices bFsas (spec.md §3-§4): for
// each sequence, the subset of (graph-state, frame) pairs and the arcs
// between them that survive a dynamic forward beam and a fixed backward
// beam.
//
// Preconditions (spec.md §6, all fatal on violation): aFsas.NumGraphs()
// is 1 or equals bFsas.NumSeqs(); bFsas.NumSeqs() >= 1; opts is valid;
// every graph arc's label+1 lies within bFsas' column range; bFsas'
// sequences are in non-increasing frame-count order (enforced by
// fsa.DenseEmissions.Validate, which callers must have already run).
func IntersectDensePruned(ctx *kernel.Context, aFsas fsa.FsaVec, bFsas fsa.DenseEmissions, opts Options) (fsa.FsaVec, []int32, []int32, error) {
	numSeqs := bFsas.NumSeqs()
	if numSeqs < 1 {
		return fsa.FsaVec{}, nil, nil, ErrNoSequences
	}
	if aFsas.NumGraphs() != 1 && aFsas.NumGraphs() != numSeqs {
		return fsa.FsaVec{}, nil, nil, fmt.Errorf("%w: a_fsas dim0=%d, b_fsas dim0=%d", ErrDim0, aFsas.NumGraphs(), numSeqs)
	}
	if err := opts.Validate(); err != nil {
		return fsa.FsaVec{}, nil, nil, err
	}
	if err := validateLabels(aFsas, bFsas.Columns()); err != nil {
		return fsa.FsaVec{}, nil, nil, err
	}

	// Sequences are sorted non-increasing by frame count, so sequence 0
	// has the largest frame count.
	T := bFsas.FrameCount(0)

	beams := make([]float32, numSeqs)
	for i := range beams {
		beams[i] = opts.SearchBeam
	}

	frames := make([]FrameInfo, T+1)
	frames[0] = newInitialFrame(aFsas, numSeqs)
	for t := int32(0); t <= T; t++ {
		next := propagateForward(ctx, t, &frames[t], aFsas, bFsas, beams, opts)
		if t < T {
			frames[t+1] = next
		}
	}

	fi, err := buildFrameIndex(frames)
	if err != nil {
		return fsa.FsaVec{}, nil, nil, err
	}

	stateKeep := make([]bool, fi.shape.TotSize(2))
	arcKeep := make([]bool, fi.shape.TotSize(3))
	for t := int(T); t >= 0; t-- {
		var next *FrameInfo
		if t < int(T) {
			next = &frames[t+1]
		}
		propagateBackward(ctx, &frames[t], next, aFsas, opts, fi.globalState[t], fi.globalArc[t], stateKeep, arcKeep)
	}

	return formatOutput(fi, frames, aFsas, bFsas, stateKeep, arcKeep)
}
