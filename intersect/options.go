package intersect

// Options configures IntersectDensePruned's beam search (spec.md §4.4,
// §6).
//
// Fields:
//
//	SearchBeam - the target cutoff margin the dynamic-beam controller
//	             relaxes toward on every frame (spec.md §4.4).
//	OutputBeam - the fixed cutoff margin used during the backward pass to
//	             retain arcs/states (spec.md §4.6). Must be > 0.
//	MinActive  - soft lower bound on active states per sequence; the beam
//	             grows when the active count falls below it.
//	MaxActive  - soft upper bound on active states per sequence; the beam
//	             shrinks when the active count exceeds it. Must exceed
//	             MinActive.
type Options struct {
	SearchBeam float32
	OutputBeam float32
	MinActive  int32
	MaxActive  int32
}

// DefaultOptions returns an Options struct pre-populated with the beam
// values k2's own defaults use.
//
//	SearchBeam: 15.0
//	OutputBeam: 8.0
//	MinActive:  30
//	MaxActive:  10000
func DefaultOptions() Options {
	return Options{
		SearchBeam: 15.0,
		OutputBeam: 8.0,
		MinActive:  30,
		MaxActive:  10000,
	}
}

// Validate checks the preconditions spec.md §6 assigns to the beam
// parameters: OutputBeam > 0 and 0 <= MinActive < MaxActive.
func (o Options) Validate() error {
	if o.OutputBeam <= 0 {
		return ErrBadOutputBeam
	}
	if o.MinActive < 0 || o.MinActive >= o.MaxActive {
		return ErrBadActiveBounds
	}
	return nil
}
