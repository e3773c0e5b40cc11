package fsa

import (
	"fmt"

	"github.com/arrowlat/densefsa/ragged"
)

// FsaVec is a batch of decoding graphs: a 3-axis ragged structure indexed
// [fsa,state,arc] of Arc values (spec.md §3's a_fsas / DecodingGraphs).
// Either it holds one graph per sequence (Dim0 == b_fsas.Dim0) or a
// single shared graph (Dim0 == 1); see Broadcast.
type FsaVec struct {
	ragged.Ragged[Arc]
}

// NewFsaVec wraps a pre-built ragged[Arc] as an FsaVec and validates the
// "last state of each graph is a unique final state with no outgoing
// arcs" invariant spec.md §3 requires.
func NewFsaVec(r ragged.Ragged[Arc]) (FsaVec, error) {
	v := FsaVec{r}
	if err := v.Validate(); err != nil {
		return FsaVec{}, err
	}
	return v, nil
}

// Validate checks the per-graph invariants spec.md §3 documents.
func (v FsaVec) Validate() error {
	stateSplits := v.Shape.RowSplits(1)
	arcSplits := v.Shape.RowSplits(2)
	for g := 0; g < len(stateSplits)-1; g++ {
		start, end := stateSplits[g], stateSplits[g+1]
		if start == end {
			return fmt.Errorf("%w: graph %d", ErrEmptyGraph, g)
		}
		finalState := end - 1
		if arcSplits[finalState+1] != arcSplits[finalState] {
			return fmt.Errorf("%w: graph %d", ErrFinalStateHasArcs, g)
		}
	}
	return nil
}

// NumGraphs returns the number of graphs (Dim0).
func (v FsaVec) NumGraphs() int32 { return v.Shape.Dim0() }

// GraphIndex resolves the graph index to use for sequence seq, honoring
// the shared-graph broadcast: every sequence uses graph 0 when
// NumGraphs() == 1 (spec.md §9's "shared graph" design note).
func (v FsaVec) GraphIndex(seq int32) int32 {
	if v.NumGraphs() == 1 {
		return 0
	}
	return seq
}

// StartState returns the idx01 of graph g's start state (its first
// state).
func (v FsaVec) StartState(g int32) int32 {
	return v.Shape.RowSplits(1)[g]
}

// FinalState returns the idx01 of graph g's unique final state (its last
// state, per the NewFsaVec invariant).
func (v FsaVec) FinalState(g int32) int32 {
	return v.Shape.RowSplits(1)[g+1] - 1
}

// Broadcast wraps a single decoding graph (Dim0 == 1) so call sites can
// express "one graph shared by every sequence" without constructing
// per-sequence copies, per spec.md §9.
func Broadcast(graph FsaVec) (FsaVec, error) {
	if graph.NumGraphs() != 1 {
		return FsaVec{}, fmt.Errorf("%w: Broadcast requires a single graph, got dim0=%d", ErrDim0Mismatch, graph.NumGraphs())
	}
	return graph, nil
}
