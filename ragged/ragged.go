package ragged

// Ragged pairs a Shape with the flat Values it describes: len(Values)
// must equal Shape.TotSize(Shape.NumAxes()-1).
type Ragged[T any] struct {
	Shape  *Shape
	Values []T
}

// NumAxes is a thin convenience forward to Shape.NumAxes.
func (r Ragged[T]) NumAxes() int { return r.Shape.NumAxes() }

// Gather returns a new slice holding src[indices[i]] for each i — the
// pattern StackFrames/SubsampleOutputShape callers use to materialize a
// reordered/pruned Values array once they have the index permutation. It
// builds no Shape; pairing the result with one is left to the caller.
func Gather[T any](src []T, indices []int32) []T {
	out := make([]T, len(indices))
	for i, idx := range indices {
		out[i] = src[idx]
	}
	return out
}
