package fsa_test

import (
	"testing"

	"github.com/arrowlat/densefsa/fsa"
	"github.com/arrowlat/densefsa/ragged"
	"github.com/stretchr/testify/require"
)

// simpleAcceptor builds the S1 scenario graph from spec.md §8: states
// {0 (start), 1 (final)}, arcs {0->0 label 0 score 0, 0->1 label -1 score 0}.
func simpleAcceptor(t *testing.T) fsa.FsaVec {
	t.Helper()
	stateSplits := []int32{0, 2} // 2 states; state1 (final) has no arcs
	arcs := []fsa.Arc{
		{Src: 0, Dest: 0, Label: 0, Score: 0},
		{Src: 0, Dest: 1, Label: -1, Score: 0},
	}
	shape, err := ragged.NewShape(1, stateSplits, []int32{0, 2, 2})
	require.NoError(t, err)
	v, err := fsa.NewFsaVec(ragged.Ragged[fsa.Arc]{Shape: shape, Values: arcs})
	require.NoError(t, err)
	return v
}

func TestNewFsaVec_Valid(t *testing.T) {
	v := simpleAcceptor(t)
	require.Equal(t, int32(1), v.NumGraphs())
	require.Equal(t, int32(0), v.StartState(0))
	require.Equal(t, int32(1), v.FinalState(0))
}

func TestNewFsaVec_FinalStateHasArcs(t *testing.T) {
	stateSplits := []int32{0, 2}
	arcSplits := []int32{0, 1, 2} // final state (idx 1) has one outgoing arc
	shape, err := ragged.NewShape(1, stateSplits, arcSplits)
	require.NoError(t, err)
	arcs := []fsa.Arc{{Src: 0, Dest: 1, Label: 0, Score: 0}, {Src: 1, Dest: 1, Label: 0, Score: 0}}
	_, err = fsa.NewFsaVec(ragged.Ragged[fsa.Arc]{Shape: shape, Values: arcs})
	require.ErrorIs(t, err, fsa.ErrFinalStateHasArcs)
}

func TestNewFsaVec_EmptyGraph(t *testing.T) {
	shape, err := ragged.NewShape(1, []int32{0, 0}, []int32{0})
	require.NoError(t, err)
	_, err = fsa.NewFsaVec(ragged.Ragged[fsa.Arc]{Shape: shape, Values: nil})
	require.ErrorIs(t, err, fsa.ErrEmptyGraph)
}

func TestGraphIndex_Broadcast(t *testing.T) {
	v := simpleAcceptor(t)
	b, err := fsa.Broadcast(v)
	require.NoError(t, err)
	require.Equal(t, int32(0), b.GraphIndex(0))
	require.Equal(t, int32(0), b.GraphIndex(41))
}
