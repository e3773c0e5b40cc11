package ordered

import "sync/atomic"

// AtomicMaxInto atomically updates *dst to the ordered encoding of f if that
// encoding is larger than the value currently stored, i.e. it performs
//
//	*dst = ToOrdered(max(FromOrdered(*dst), f))
//
// using a compare-and-swap retry loop. This is the only lock-free primitive
// the forward pass needs: several goroutines may race to record the best
// incoming arc into the same destination state's forward_loglike, and this
// function lets them do so without a per-state mutex.
//
// Complexity: O(1) expected; O(k) under k concurrent losing CAS attempts.
func AtomicMaxInto(dst *uint32, f float32) {
	next := ToOrdered(f)
	for {
		cur := atomic.LoadUint32(dst)
		if next <= cur {
			return
		}
		if atomic.CompareAndSwapUint32(dst, cur, next) {
			return
		}
	}
}
