// Package fsa defines the two input data types dense-pruned intersection
// operates on — a batch of decoding graphs (FsaVec) and a batch of dense
// per-frame emission matrices (DenseEmissions) — per spec.md §3, plus the
// Arc type both share.
package fsa
