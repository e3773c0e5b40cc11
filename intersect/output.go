package intersect

import (
	"fmt"

	"github.com/arrowlat/densefsa/fsa"
	"github.com/arrowlat/densefsa/ragged"
)

// formatOutput materializes the pruned lattice (spec.md §4.8): subsample
// oshape_unpruned by the keep-masks, drop the time axis to get the
// output FSA-vector's [fsa,state,arc] shape, and walk each surviving arc
// back through its ArcInfo to build the output Arc plus the two arc
// maps.
func formatOutput(fi *frameIndex, frames []FrameInfo, aFsas fsa.FsaVec, bFsas fsa.DenseEmissions, stateKeep, arcKeep []bool) (fsa.FsaVec, []int32, []int32, error) {
	prunedShape, newToOldArc, oldToNewState, err := ragged.SubsampleOutputShape(fi.shape, stateKeep, arcKeep)
	if err != nil {
		return fsa.FsaVec{}, nil, nil, err
	}
	ofsaShape, err := ragged.RemoveAxis(prunedShape, 1)
	if err != nil {
		return fsa.FsaVec{}, nil, nil, err
	}
	ofsaStateSplits := ofsaShape.RowSplits(1)
	ofsaStateOwner := ofsaShape.RowIds(1)

	columns := bFsas.Columns()
	outArcs := make([]fsa.Arc, len(newToOldArc))
	arcMapA := make([]int32, len(newToOldArc))
	arcMapB := make([]int32, len(newToOldArc))

	// One Gather resolves every kept arc's ArcInfo from the flattened
	// global arc order, rather than a per-arc frame/local lookup.
	arcInfos := ragged.Gather(fi.flatArcs, newToOldArc)

	for prunedIdx, oldArcGlobal := range newToOldArc {
		frameIdx := fi.arcSrcFrame[oldArcGlobal]
		localArcIdx := fi.arcSrcIdx[oldArcGlobal]
		frame := frames[frameIdx]

		localStateIdx := frame.Arcs.Shape.RowIds(2)[localArcIdx]
		seq := frame.States.Shape.RowIds(1)[localStateIdx]

		arcInfo := arcInfos[prunedIdx]
		if arcInfo.Dest.Kind != destResolved {
			return fsa.FsaVec{}, nil, nil, fmt.Errorf("intersect: kept arc %d has no resolved destination", oldArcGlobal)
		}

		srcOldGlobal := fi.globalState[frameIdx][localStateIdx]
		srcNewGlobal := oldToNewState[srcOldGlobal]
		destOldGlobal := fi.globalState[frameIdx+1][arcInfo.Dest.Value]
		destNewGlobal := oldToNewState[destOldGlobal]
		if srcNewGlobal < 0 || destNewGlobal < 0 {
			return fsa.FsaVec{}, nil, nil, fmt.Errorf("intersect: kept arc %d references a pruned state", oldArcGlobal)
		}

		fsaIdx := ofsaStateOwner[srcNewGlobal]
		offset := ofsaStateSplits[fsaIdx]

		graphArc := aFsas.Values[arcInfo.AFsasArc]
		outArcs[prunedIdx] = fsa.Arc{
			Src:   srcNewGlobal - offset,
			Dest:  destNewGlobal - offset,
			Label: graphArc.Label,
			Score: arcInfo.ArcLoglike,
		}
		arcMapA[prunedIdx] = arcInfo.AFsasArc
		arcMapB[prunedIdx] = bFsas.RowOffset(seq, frameIdx)*columns + graphArc.Label + 1
	}

	ofsa, err := fsa.NewFsaVec(ragged.Ragged[fsa.Arc]{Shape: ofsaShape, Values: outArcs})
	if err != nil {
		return fsa.FsaVec{}, nil, nil, err
	}
	return ofsa, arcMapA, arcMapB, nil
}
