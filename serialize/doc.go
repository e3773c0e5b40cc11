// Package serialize persists fsa.FsaVec and fsa.DenseEmissions to a
// snappy-compressed gob stream, so decoding graphs and emission batches
// built once (or produced by IntersectDensePruned) can be cached to disk
// between cmd/densefsa invocations without re-deriving them.
package serialize
