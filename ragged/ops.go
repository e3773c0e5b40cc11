package ragged

// ExclusiveSum returns the exclusive prefix sum of in: a slice of length
// len(in)+1 where result[0] == 0 and result[i+1] == result[i] + in[i].
// This is the primitive every row-splits array in this package is built
// from (spec.md §6's exclusive_sum).
func ExclusiveSum(in []int32) []int32 {
	out := make([]int32, len(in)+1)
	var sum int32
	for i, v := range in {
		out[i] = sum
		sum += v
	}
	out[len(in)] = sum
	return out
}

// MaxPerSublist reduces the last axis of values (length s.TotSize(lastAxis))
// down to one value per element of the parent axis (length
// s.TotSize(lastAxis-1)), taking the max within each sublist. Empty
// sublists get `identity` (spec.md §6's max_per_sublist, with the
// "empty sublist -> identity" rule spec.md §4.4 relies on for the cutoff
// controller's `active == 0` case).
func MaxPerSublist(s *Shape, lastAxis int, values []float32, identity float32) []float32 {
	splits := s.RowSplits(lastAxis)
	out := make([]float32, len(splits)-1)
	for parent := 0; parent < len(splits)-1; parent++ {
		best := identity
		for i := splits[parent]; i < splits[parent+1]; i++ {
			if v := values[i]; v > best {
				best = v
			}
		}
		out[parent] = best
	}
	return out
}

// FlattenTwoAxes collapses the last two axes of a 3-axis [A,B,C] ragged
// index space into a single [A,C] view for reductions that don't care
// about the B boundary — e.g. spec.md §4.4 flattening [fsa,state,arc] to
// [fsa,arc] before taking the per-sequence best score. It returns the
// composed row-splits from axis A directly to axis C.
func FlattenTwoAxes(s *Shape) []int32 {
	// s.rowSplits[0] is axis1 (state, per fsa); s.rowSplits[1] is axis2
	// (arc, per (fsa,state)). Composing gives arc-count directly per fsa.
	return composeRowSplits(s.RowSplits(1), s.RowSplits(2))
}
