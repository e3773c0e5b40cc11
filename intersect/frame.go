package intersect

import (
	"github.com/arrowlat/densefsa/fsa"
	"github.com/arrowlat/densefsa/ordered"
	"github.com/arrowlat/densefsa/ragged"
)

// destKind tags the life stage of an ArcInfo's destination field
// (spec.md §9's "union-typed ArcInfo.dest"): before the forward dedup
// step it names a graph state, after it names a slot in next_frame's
// state list, and a pruned arc carries neither.
type destKind uint8

const (
	destCandidate destKind = iota // Value is an a_fsas idx01
	destResolved                  // Value is a flat index into next_frame.States.Values
	destPruned                    // Value is meaningless
)

// destState is ArcInfo's tagged destination field.
type destState struct {
	Kind  destKind
	Value int32
}

// StateInfo is one state in a FrameInfo's active set (spec.md §3/§4.2).
type StateInfo struct {
	// AFsasState is the idx01 of this state within its decoding graph.
	AFsasState int32

	// ForwardLoglike is to_ordered(forward log-likelihood): the max over
	// all start->state paths of accumulated score, stored in its
	// atomic-max-able ordered-uint32 encoding (spec.md §4.1, §9).
	ForwardLoglike uint32

	// BackwardLoglike is the max over all state->final paths,
	// normalised so forward+backward == 0 on the best complete path.
	// Populated by propagateBackward; -Inf for pruned states.
	BackwardLoglike float32
}

// ArcInfo is one out-arc candidate expanded from a FrameInfo's states
// (spec.md §4.3).
type ArcInfo struct {
	// AFsasArc is the idx012 of the underlying graph Arc.
	AFsasArc int32

	// ArcLoglike is emission[seq,t,label+1] + a.score.
	ArcLoglike float32

	// EndLoglike is from_ordered(src.ForwardLoglike) + ArcLoglike.
	EndLoglike float32

	// Dest is the tagged destination (spec.md §9).
	Dest destState
}

// FrameInfo is the per-timestep active-state/out-arc set the forward and
// backward passes thread through (spec.md §4.2-§4.7).
type FrameInfo struct {
	States ragged.Ragged[StateInfo]
	Arcs   ragged.Ragged[ArcInfo]
}

// newInitialFrame builds frame 0: one StateInfo per sequence, the start
// state of that sequence's decoding graph (honoring a_fsas' shared-graph
// broadcast), forward_loglike = to_ordered(0.0) (spec.md §4.2).
func newInitialFrame(aFsas fsa.FsaVec, numSeqs int32) FrameInfo {
	rowSplits := make([]int32, numSeqs+1)
	states := make([]StateInfo, 0, numSeqs)
	zero := ordered.ToOrdered(0.0)
	for seq := int32(0); seq < numSeqs; seq++ {
		g := aFsas.GraphIndex(seq)
		rowSplits[seq] = int32(len(states))
		// NewFsaVec rejects empty graphs, so the start state always
		// exists.
		states = append(states, StateInfo{AFsasState: aFsas.StartState(g), ForwardLoglike: zero})
	}
	rowSplits[numSeqs] = int32(len(states))

	shape, err := ragged.NewShape(numSeqs, rowSplits)
	if err != nil {
		// rowSplits is built as a monotone prefix sum above; this cannot
		// fail validation.
		panic(err)
	}
	return FrameInfo{States: ragged.Ragged[StateInfo]{Shape: shape, Values: states}}
}
