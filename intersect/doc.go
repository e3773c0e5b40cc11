// Package intersect implements pruned dense-graph intersection for speech
// decoding: given a batch of decoding graphs (fsa.FsaVec) and a batch of
// dense per-frame emission matrices (fsa.DenseEmissions), it computes, for
// each sequence, the beam-pruned subset of the product automaton.
//
// The entry point is IntersectDensePruned. Internally it runs a forward
// pass over time building one FrameInfo per frame (newInitialFrame,
// getArcs, getPruningCutoffs, propagateForward), stacks the per-frame arc
// shapes into a single 4-axis ragged shape, runs a backward pass computing
// keep-masks (propagateBackward), subsamples by those masks, and
// materializes the pruned lattice (formatOutput).
package intersect
