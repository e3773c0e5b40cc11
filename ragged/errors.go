package ragged

import "errors"

// Sentinel errors for ragged shape construction and composition.
var (
	// ErrEmptyRowSplits indicates a row-splits array was nil or length 0;
	// a valid row-splits array always has at least one element (the 0).
	ErrEmptyRowSplits = errors.New("ragged: row-splits array must be non-empty")

	// ErrRowSplitsNotZero indicates a row-splits array's first element is
	// not 0, violating the exclusive-prefix-sum invariant.
	ErrRowSplitsNotZero = errors.New("ragged: row-splits[0] must be 0")

	// ErrRowSplitsNotMonotonic indicates a row-splits array is not
	// non-decreasing.
	ErrRowSplitsNotMonotonic = errors.New("ragged: row-splits must be non-decreasing")

	// ErrAxisMismatch indicates two shapes being composed or stacked do
	// not agree on the sizes required for the operation.
	ErrAxisMismatch = errors.New("ragged: axis size mismatch")

	// ErrAxisOutOfRange indicates an axis index passed to RemoveAxis is
	// not an interior axis of the shape, or a negative dim0 was passed to
	// NewShape. RowSplits, RowIds, TotSize and MaxSize do not check their
	// axis argument.
	ErrAxisOutOfRange = errors.New("ragged: axis index out of range")

	// ErrEmptyStack indicates StackFrames was called with zero shapes.
	ErrEmptyStack = errors.New("ragged: cannot stack zero shapes")
)
