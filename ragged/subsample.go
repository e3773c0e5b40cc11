package ragged

// SubsampleOutputShape prunes a 4-axis [fsa,t,state,arc] shape by two
// keep-masks (spec.md §6's subsample_ragged_shape, specialized to the
// shape FormatOutput actually needs). stateKeep has length s.TotSize(2);
// arcKeep has length s.TotSize(3). A dropped state drops all of its arcs
// regardless of their own arcKeep value — an arc cannot survive as a
// child of a state that was pruned out of the ragged structure.
//
// Returns the pruned shape plus:
//   - newToOldArc: for each surviving arc (by its new flat idx0123), its
//     old flat idx0123 in s.
//   - oldToNewState: length s.TotSize(2); oldToNewState[i] is the new
//     flat state index for old state i, or -1 if it was pruned.
func SubsampleOutputShape(s *Shape, stateKeep, arcKeep []bool) (pruned *Shape, newToOldArc []int32, oldToNewState []int32, err error) {
	if s.NumAxes() != 4 {
		return nil, nil, nil, ErrAxisMismatch
	}
	numStates := s.TotSize(2)
	oldToNewState = make([]int32, numStates)
	for i := range oldToNewState {
		oldToNewState[i] = -1
	}

	// axis1 ("t") row-splits are untouched: pruning never removes a
	// frame, only the states/arcs within it.
	rs1 := append([]int32(nil), s.RowSplits(1)...)

	stateSplits := s.RowSplits(2)
	arcSplits := s.RowSplits(3)

	rs2 := make([]int32, len(stateSplits))
	rs3 := make([]int32, 0, s.TotSize(3)+1)
	rs3 = append(rs3, 0)

	var newStatePos, newArcPos int32
	for parent := 0; parent < len(stateSplits)-1; parent++ {
		rs2[parent] = newStatePos
		for oldState := stateSplits[parent]; oldState < stateSplits[parent+1]; oldState++ {
			if !stateKeep[oldState] {
				continue
			}
			oldToNewState[oldState] = newStatePos
			newStatePos++

			for oldArc := arcSplits[oldState]; oldArc < arcSplits[oldState+1]; oldArc++ {
				if !arcKeep[oldArc] {
					continue
				}
				newToOldArc = append(newToOldArc, oldArc)
				newArcPos++
			}
			rs3 = append(rs3, newArcPos)
		}
	}
	rs2[len(stateSplits)-1] = newStatePos

	pruned, err = NewShape(s.Dim0(), rs1, rs2, rs3)
	return pruned, newToOldArc, oldToNewState, err
}
