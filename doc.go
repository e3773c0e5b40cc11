// Package densefsa implements beam-pruned dense-graph intersection: the
// core decoding-graph composition step that turns per-frame neural
// network emission scores into a pruned lattice of candidate symbol
// sequences.
//
// Subpackages:
//
//	ordered/    — order-preserving float<->uint32 codec and lock-free atomic max
//	ragged/     — ragged (jagged) tensor shapes and the Ragged[T] container
//	kernel/     — bounded-parallelism "run this over N elements" substrate
//	fsa/        — Arc, FsaVec decoding graphs, DenseEmissions batches
//	intersect/  — IntersectDensePruned, the forward/backward pruning pipeline
//	serialize/  — snappy+gob persistence for FsaVec and DenseEmissions
//	cmd/densefsa/ — CLI driving a graph and emission batch through intersect
//
// A typical call passes one or more DecodingGraphs (shared or per-sequence)
// and a batch of DenseEmissions, sorted by descending frame count, into
// intersect.IntersectDensePruned, which returns the pruned output FsaVec
// together with two arc maps tracing each surviving arc back to its
// originating graph arc and emission-matrix offset.
package densefsa
