// Package ragged implements the small family of jagged ("ragged") tensor
// types that every stage of a dense-pruned graph intersection shares:
// per-axis row-splits and row-ids, exclusive-sum, sublist-max reductions,
// shape composition/stacking, and keep-mask subsampling.
//
// spec.md treats this as an external collaborator ("the ragged-tensor
// library itself"); this module has no such external dependency available,
// so the contracts are implemented here, scoped tightly to what intersect
// actually needs rather than a general-purpose tensor library.
//
// A Shape describes axes 0..n. Axis 0 has Dim0() elements; each axis
// k in 1..n is described by row-splits: an exclusive prefix-sum array of
// length TotSize(k-1)+1 partitioning axis k's elements among axis k-1's
// elements. RowIds(k) is the inverse mapping (length TotSize(k)), computed
// lazily and cached.
package ragged
