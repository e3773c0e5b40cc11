package intersect

import (
	"testing"

	"github.com/arrowlat/densefsa/ragged"
	"github.com/stretchr/testify/require"
)

// oneArcShape builds a minimal [fsa,state,arc] shape with a single
// sequence, single state, single arc — enough to drive
// getPruningCutoffs' beam arithmetic in isolation from the rest of the
// pipeline.
func oneArcShape(t *testing.T) ragged.Ragged[ArcInfo] {
	t.Helper()
	shape, err := ragged.NewShape(1, []int32{0, 1}, []int32{0, 1})
	require.NoError(t, err)
	return ragged.Ragged[ArcInfo]{Shape: shape, Values: []ArcInfo{{EndLoglike: 0}}}
}

// TestGetPruningCutoffs_MaxActiveClamp covers spec.md §8 S3: once a
// sequence's active-state count exceeds MaxActive, the dynamic beam must
// shrink below SearchBeam rather than keep relaxing toward it.
func TestGetPruningCutoffs_MaxActiveClamp(t *testing.T) {
	arcs := oneArcShape(t)
	opts := DefaultOptions()
	opts.MaxActive = 100

	beams := []float32{opts.SearchBeam}
	activeCounts := []int32{opts.MaxActive + 1}

	getPruningCutoffs(arcs, activeCounts, beams, opts)
	require.Less(t, beams[0], opts.SearchBeam)

	// Repeated overflow frames keep shrinking, never bouncing back above
	// SearchBeam on their own.
	getPruningCutoffs(arcs, activeCounts, beams, opts)
	require.Less(t, beams[0], opts.SearchBeam)
}

// TestGetPruningCutoffs_MinActiveFloor covers spec.md §8 S4: once a
// sequence's active-state count falls below MinActive (but isn't zero),
// the dynamic beam must grow above SearchBeam rather than hold or shrink.
func TestGetPruningCutoffs_MinActiveFloor(t *testing.T) {
	arcs := oneArcShape(t)
	opts := DefaultOptions()
	opts.MinActive = 30

	beams := []float32{opts.SearchBeam / 2}
	activeCounts := []int32{opts.MinActive - 1}

	getPruningCutoffs(arcs, activeCounts, beams, opts)
	require.Greater(t, beams[0], opts.SearchBeam)
}

// TestGetPruningCutoffs_WithinBoundsRelaxesTowardSearchBeam covers the
// steady-state branch: an active count within [MinActive, MaxActive]
// pulls the beam toward SearchBeam rather than away from it.
func TestGetPruningCutoffs_WithinBoundsRelaxesTowardSearchBeam(t *testing.T) {
	arcs := oneArcShape(t)
	opts := DefaultOptions()

	beams := []float32{0}
	activeCounts := []int32{opts.MinActive}

	getPruningCutoffs(arcs, activeCounts, beams, opts)
	require.InDelta(t, 0.2*opts.SearchBeam, beams[0], 1e-5)
}
