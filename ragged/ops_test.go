package ragged_test

import (
	"math"
	"testing"

	"github.com/arrowlat/densefsa/ragged"
	"github.com/stretchr/testify/require"
)

func TestExclusiveSum(t *testing.T) {
	require.Equal(t, []int32{0, 2, 5, 5, 9}, ragged.ExclusiveSum([]int32{2, 3, 0, 4}))
}

func TestMaxPerSublist(t *testing.T) {
	// axis1: 3 states; axis2: arc counts 2,0,3.
	rs1 := []int32{0, 3}
	rs2 := []int32{0, 2, 2, 5}
	s, err := ragged.NewShape(1, rs1, rs2)
	require.NoError(t, err)

	values := []float32{1, 5, -2, 4, 9}
	neg := float32(math.Inf(-1))
	got := ragged.MaxPerSublist(s, 2, values, neg)
	require.Equal(t, []float32{5, neg, 9}, got)
}

func TestFlattenTwoAxes(t *testing.T) {
	// 2 fsas; axis1 (state) counts 2,1; axis2 (arc) counts per state: 1,2,0.
	rs1 := []int32{0, 2, 3}
	rs2 := []int32{0, 1, 3, 3}
	s, err := ragged.NewShape(2, rs1, rs2)
	require.NoError(t, err)

	require.Equal(t, []int32{0, 3, 3}, ragged.FlattenTwoAxes(s))
}
