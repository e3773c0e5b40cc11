package ragged_test

import (
	"testing"

	"github.com/arrowlat/densefsa/ragged"
	"github.com/stretchr/testify/require"
)

// TestRemoveAxis builds a 3-axis [fsa,t,state] shape and removes the "t"
// axis, checking the resulting 2-axis [fsa,state] shape matches the
// hand-computed expectation.
func TestRemoveAxis(t *testing.T) {
	// 2 fsas; fsa0 has 2 frames, fsa1 has 1 frame (axis1 "t").
	rs1 := []int32{0, 2, 3}
	// 3 (fsa,t) pairs; state counts 2,1,3 respectively (axis2 "state").
	rs2 := []int32{0, 2, 3, 6}
	s, err := ragged.NewShape(2, rs1, rs2)
	require.NoError(t, err)

	out, err := ragged.RemoveAxis(s, 1)
	require.NoError(t, err)
	require.Equal(t, int32(2), out.Dim0())
	// fsa0 had 2+1=3 states across its 2 frames; fsa1 had 3 states.
	require.Equal(t, []int32{0, 3, 6}, out.RowSplits(1))
}

// TestStackFrames stacks three tiny [fsa,state,arc] shapes and checks the
// resulting 4-axis shape and index maps.
func TestStackFrames(t *testing.T) {
	mk := func(stateCounts []int32, arcCounts []int32) *ragged.Shape {
		rsState := ragged.ExclusiveSum(stateCounts)
		rsArc := ragged.ExclusiveSum(arcCounts)
		sh, err := ragged.NewShape(int32(len(stateCounts)), rsState, rsArc)
		require.NoError(t, err)
		return sh
	}
	// One fsa, two frames: frame0 has 2 states (1,2 arcs), frame1 has 1 state (3 arcs).
	f0 := mk([]int32{2}, []int32{1, 2})
	f1 := mk([]int32{1}, []int32{3})

	out, stateSrcFrame, stateSrcIdx, arcSrcFrame, arcSrcIdx, err := ragged.StackFrames([]*ragged.Shape{f0, f1})
	require.NoError(t, err)
	require.Equal(t, int32(1), out.Dim0())
	require.Equal(t, []int32{0, 2}, out.RowSplits(1))    // 1 fsa -> 2 frames
	require.Equal(t, []int32{0, 2, 3}, out.RowSplits(2)) // frame0: 2 states, frame1: 1 state
	require.Equal(t, []int32{0, 1, 3, 6}, out.RowSplits(3))
	require.Equal(t, []int32{0, 0, 1}, stateSrcFrame)
	require.Equal(t, []int32{0, 1, 0}, stateSrcIdx)
	require.Equal(t, []int32{0, 0, 0, 1, 1, 1}, arcSrcFrame)
	require.Equal(t, []int32{0, 1, 2, 0, 1, 2}, arcSrcIdx)
}
