package intersect

import "errors"

// Sentinel errors for IntersectDensePruned's preconditions and fatal
// runtime conditions (spec.md §7's "precondition violations").
var (
	// ErrDim0 indicates a_fsas.dim0 is neither 1 nor b_fsas.dim0.
	ErrDim0 = errors.New("intersect: a_fsas dim0 must be 1 or equal to b_fsas dim0")

	// ErrNoSequences indicates b_fsas.dim0 < 1.
	ErrNoSequences = errors.New("intersect: b_fsas must have at least one sequence")

	// ErrBadOutputBeam indicates OutputBeam <= 0.
	ErrBadOutputBeam = errors.New("intersect: output beam must be positive")

	// ErrBadActiveBounds indicates MinActive/MaxActive do not satisfy
	// 0 <= min_active < max_active.
	ErrBadActiveBounds = errors.New("intersect: min_active/max_active out of range")

	// ErrLabelOutOfRange indicates a graph arc's label+1 falls outside
	// [0, emission_columns).
	ErrLabelOutOfRange = errors.New("intersect: arc label out of range of emission columns")

	// ErrArcMapLengthMismatch indicates ValidateArcMaps was given
	// mismatched-length out.Values/arcMapA/arcMapB slices.
	ErrArcMapLengthMismatch = errors.New("intersect: output arcs and arc maps have mismatched lengths")

	// ErrArcMapLabelMismatch indicates an output arc's label disagrees
	// with its mapped source graph arc's label.
	ErrArcMapLabelMismatch = errors.New("intersect: output arc label disagrees with arc_map_a")

	// ErrArcMapScoreMismatch indicates an output arc's score disagrees
	// with graph score + emission score recomputed from the arc maps.
	ErrArcMapScoreMismatch = errors.New("intersect: output arc score disagrees with arc_map_a/arc_map_b")
)
