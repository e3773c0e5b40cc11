package fsa

import "errors"

// Sentinel errors for decoding-graph and dense-emission validation.
var (
	// ErrEmptyGraph indicates an FsaVec with zero states for some
	// sequence, which violates the "unique final state" invariant.
	ErrEmptyGraph = errors.New("fsa: graph has no states")

	// ErrFinalStateHasArcs indicates a graph's last state — which must
	// be its unique final state — has outgoing arcs.
	ErrFinalStateHasArcs = errors.New("fsa: final state has outgoing arcs")

	// ErrDim0Mismatch indicates a bad Dim0: DenseEmissions.Validate
	// returns it when there are no sequences, and Broadcast returns it
	// when given more than one graph.
	ErrDim0Mismatch = errors.New("fsa: a_fsas dim0 must be 1 or match b_fsas dim0")

	// ErrLabelOutOfRange indicates an arc's label+1 falls outside
	// [0, columns) of the emission matrix.
	ErrLabelOutOfRange = errors.New("fsa: arc label out of range of emission columns")

	// ErrSequencesNotSorted indicates b_fsas sequences are not in
	// non-increasing frame-count order, spec.md §6/§7's fatal
	// precondition.
	ErrSequencesNotSorted = errors.New("fsa: sequences must be sorted by non-increasing frame count")

	// ErrScoresNotContiguous indicates b_fsas.Scores' row count does not
	// match the dense shape's total frame count, the matrix has no
	// columns, or a sequence's last frame has a finite score in a column
	// other than 0.
	ErrScoresNotContiguous = errors.New("fsa: scores matrix is not contiguous with the frame shape")
)
