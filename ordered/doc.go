// Package ordered provides a bijection between IEEE-754 float32 values and
// a uint32 whose unsigned ordering matches the float ordering.
//
// The sole consumer is the forward pass of the intersect package: merging
// the forward log-likelihood of a destination state from several incoming
// arcs is a max-reduction over floats, but the only lock-free atomic
// available on most platforms (and in Go's sync/atomic) is CompareAndSwap
// over integers. Encoding scores with ToOrdered lets that merge be done
// with an integer atomic-max loop instead of a mutex per state.
package ordered
