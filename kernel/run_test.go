package kernel_test

import (
	"sync/atomic"
	"testing"

	"github.com/arrowlat/densefsa/kernel"
	"github.com/stretchr/testify/require"
)

func TestRun_VisitsEveryIndex(t *testing.T) {
	const n = 10_000
	ctx := kernel.NewHostContext(4)
	seen := make([]int32, n)
	kernel.Run(ctx, n, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})
	for i, v := range seen {
		require.Equal(t, int32(1), v, "index %d visited %d times", i, v)
	}
}

func TestRun_ZeroIsNoOp(t *testing.T) {
	ctx := kernel.NewHostContext(2)
	called := false
	kernel.Run(ctx, 0, func(i int) { called = true })
	require.False(t, called)
}

func TestRun_DefaultParallelism(t *testing.T) {
	ctx := kernel.NewHostContext(0)
	var count int32
	kernel.Run(ctx, 100, func(i int) { atomic.AddInt32(&count, 1) })
	require.Equal(t, int32(100), count)
}
