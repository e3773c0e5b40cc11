package ragged_test

import (
	"testing"

	"github.com/arrowlat/densefsa/ragged"
	"github.com/stretchr/testify/require"
)

func TestSubsampleOutputShape(t *testing.T) {
	// 1 fsa, 1 frame (t), 3 states, arc counts 1,2,1.
	rsT := []int32{0, 1}
	rsState := []int32{0, 3}
	rsArc := []int32{0, 1, 3, 4}
	s, err := ragged.NewShape(1, rsT, rsState, rsArc)
	require.NoError(t, err)

	stateKeep := []bool{true, false, true} // drop state 1 entirely
	arcKeep := []bool{true, true, false, true}

	pruned, newToOldArc, oldToNewState, err := ragged.SubsampleOutputShape(s, stateKeep, arcKeep)
	require.NoError(t, err)
	require.Equal(t, []int32{0, 2}, pruned.RowSplits(2)) // 2 states kept
	require.Equal(t, []int32{0, 1, 2}, pruned.RowSplits(3))
	// state0's arc0 kept (old idx0); state1 dropped entirely (old idx 1,2 gone
	// regardless of arcKeep); state2's arc kept (old idx3).
	require.Equal(t, []int32{0, 3}, newToOldArc)
	require.Equal(t, []int32{0, -1, 1}, oldToNewState)
}
