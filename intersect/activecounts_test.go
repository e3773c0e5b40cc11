package intersect

import (
	"testing"

	"github.com/arrowlat/densefsa/fsa"
	"github.com/arrowlat/densefsa/ragged"
	"github.com/stretchr/testify/require"
)

func TestActiveCounts_InitialFrame(t *testing.T) {
	shape, err := ragged.NewShape(2, []int32{0, 2, 4}, []int32{0, 1, 1, 2, 2})
	require.NoError(t, err)
	arcs := []fsa.Arc{
		{Src: 0, Dest: 1, Label: -1, Score: 0},
		{Src: 0, Dest: 1, Label: -1, Score: 0},
	}
	aFsas, err := fsa.NewFsaVec(ragged.Ragged[fsa.Arc]{Shape: shape, Values: arcs})
	require.NoError(t, err)

	frame := newInitialFrame(aFsas, 2)
	require.Equal(t, []int32{1, 1}, ActiveCounts(frame))
}
