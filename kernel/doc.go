// Package kernel provides the parallel execution substrate spec.md §5
// requires: a Context standing in for "host or device", and Run, a
// "run this indexed lambda over N elements" primitive with no ordering
// guarantee between invocations.
//
// The intersect package runs its per-state and per-arc kernels (getArcs,
// the destination-resolution step of propagateForward, and
// propagateBackward) through Run; its other per-element loops run
// serially on the calling goroutine. The top-level driver issues these
// steps one after another in dependency order. A real device backend would dispatch Run as a GPU kernel launch;
// this module only ships the host backend, which fans the work out over
// a bounded goroutine pool (golang.org/x/sync/errgroup + a semaphore
// capping in-flight goroutines at Context.Parallelism) rather than
// launching len(N) goroutines unconditionally — the semaphore is the
// stand-in for a device's bounded thread-block occupancy.
package kernel
