package intersect

import "github.com/arrowlat/densefsa/ragged"

// frameIndex bundles the bookkeeping FormatOutput and the backward pass
// both need to translate between a frame's own local state/arc indices
// and their flat position under oshape_unpruned (spec.md §4.7).
type frameIndex struct {
	shape *ragged.Shape

	// srcFrame/srcIdx map a global oshape_unpruned flat index back to
	// (frame, local index) — StackFrames' direct output.
	stateSrcFrame, stateSrcIdx []int32
	arcSrcFrame, arcSrcIdx     []int32

	// globalState/globalArc invert the above: globalState[frame][local]
	// is the flat oshape_unpruned index for that frame's local state.
	globalState [][]int32
	globalArc   [][]int32

	// flatArcs is every frame's ArcInfo flattened into oshape_unpruned's
	// global arc order, so formatOutput can resolve a kept arc's ArcInfo
	// with a single ragged.Gather(fi.flatArcs, newToOldArc) instead of a
	// per-arc frame/local lookup.
	flatArcs []ArcInfo
}

// buildFrameIndex stacks every frame's [fsa,state,arc] arc shape into
// oshape_unpruned and derives both directions of the local<->global
// index mapping.
func buildFrameIndex(frames []FrameInfo) (*frameIndex, error) {
	shapes := make([]*ragged.Shape, len(frames))
	for i, f := range frames {
		shapes[i] = f.Arcs.Shape
	}

	shape, stateSrcFrame, stateSrcIdx, arcSrcFrame, arcSrcIdx, err := ragged.StackFrames(shapes)
	if err != nil {
		return nil, err
	}

	fi := &frameIndex{
		shape:         shape,
		stateSrcFrame: stateSrcFrame,
		stateSrcIdx:   stateSrcIdx,
		arcSrcFrame:   arcSrcFrame,
		arcSrcIdx:     arcSrcIdx,
		globalState:   make([][]int32, len(frames)),
		globalArc:     make([][]int32, len(frames)),
	}
	for i, f := range frames {
		fi.globalState[i] = make([]int32, len(f.States.Values))
		fi.globalArc[i] = make([]int32, len(f.Arcs.Values))
	}
	for global, frameIdx := range stateSrcFrame {
		fi.globalState[frameIdx][stateSrcIdx[global]] = int32(global)
	}
	for global, frameIdx := range arcSrcFrame {
		fi.globalArc[frameIdx][arcSrcIdx[global]] = int32(global)
	}

	fi.flatArcs = make([]ArcInfo, len(arcSrcFrame))
	for global, frameIdx := range arcSrcFrame {
		fi.flatArcs[global] = frames[frameIdx].Arcs.Values[arcSrcIdx[global]]
	}
	return fi, nil
}
