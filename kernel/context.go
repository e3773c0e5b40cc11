package kernel

import "runtime"

// Context is the "device context" spec.md §3/§5 requires every Array and
// Ragged object to be bound to. It carries no device memory of its own —
// this module has only a host backend — just the concurrency budget Run
// uses to cap in-flight goroutines.
type Context struct {
	// Parallelism bounds the number of goroutines Run may have in flight
	// at once. 0 or negative means "use GOMAXPROCS", the same default a
	// real device context would pick from available compute units.
	Parallelism int
}

// NewHostContext returns a Context with the given parallelism budget. A
// budget <= 0 defaults to runtime.GOMAXPROCS(0).
func NewHostContext(parallelism int) *Context {
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	return &Context{Parallelism: parallelism}
}

// budget returns a safe (>=1) worker count for Run.
func (c *Context) budget() int64 {
	if c == nil || c.Parallelism <= 0 {
		return int64(runtime.GOMAXPROCS(0))
	}
	return int64(c.Parallelism)
}
