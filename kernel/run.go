package kernel

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Run applies f(i) for every 0 <= i < n, with no ordering guarantee
// between invocations (spec.md §5), and returns once every invocation has
// completed. Callers relying on shared mutable state across invocations
// must use an atomic (see the ordered package's AtomicMaxInto) or write to
// disjoint indices; Run itself provides no synchronization beyond "all
// done when Run returns".
//
// n <= 0 is a no-op. Run never returns an error itself — per-element
// fatal conditions (e.g. a label out of range) are the caller's
// responsibility to detect from f's side effects after Run returns,
// mirroring spec.md §5's "host-side control decisions see fully
// materialised outputs of each kernel".
func Run(ctx *Context, n int, f func(i int)) {
	if n <= 0 {
		return
	}
	sem := semaphore.NewWeighted(ctx.budget())
	g, gctx := errgroup.WithContext(context.Background())
	for i := 0; i < n; i++ {
		i := i
		if err := sem.Acquire(gctx, 1); err != nil {
			// gctx is only ever canceled if g.Wait would already return
			// that error; since f never errors, this path is unreachable
			// in practice, but Acquire's context plumbing must be honored.
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			f(i)
			return nil
		})
	}
	_ = g.Wait()
}
