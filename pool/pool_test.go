package pool_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/delaneyj/slotparty/pool"
	"github.com/delaneyj/slotparty/slots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ slots.Executor = (*pool.Pool)(nil)

func TestPoolRunsEveryTask(t *testing.T) {
	p := pool.New(pool.WithWorkers(4), pool.WithQueueSize(128))

	var ran atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		p.Go(func() {
			defer wg.Done()
			ran.Add(1)
		})
	}
	wg.Wait()
	require.NoError(t, p.Stop(context.Background()))

	assert.Equal(t, int32(100), ran.Load())
	stats := p.Stats()
	assert.Equal(t, 4, stats.Workers)
	assert.Equal(t, uint64(100), stats.Submitted)
	assert.Equal(t, uint64(100), stats.Executed)
	assert.Zero(t, stats.Overflow)
}

func TestPoolStopDrainsQueue(t *testing.T) {
	p := pool.New(pool.WithWorkers(1), pool.WithQueueSize(16))

	gate := make(chan struct{})
	var ran atomic.Int32
	p.Go(func() { <-gate })
	for i := 0; i < 10; i++ {
		p.Go(func() { ran.Add(1) })
	}

	stopped := make(chan error, 1)
	go func() { stopped <- p.Stop(context.Background()) }()
	close(gate)

	require.NoError(t, <-stopped)
	assert.Equal(t, int32(10), ran.Load())
	assert.False(t, p.Running())
}

func TestPoolStopRespectsContext(t *testing.T) {
	p := pool.New(pool.WithWorkers(1))

	gate := make(chan struct{})
	p.Go(func() { <-gate })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, p.Stop(ctx), context.DeadlineExceeded)
	close(gate)

	assert.ErrorIs(t, p.Stop(context.Background()), pool.ErrStopped)
}

func TestPoolGoAfterStop(t *testing.T) {
	p := pool.New(pool.WithWorkers(2))
	require.NoError(t, p.Stop(context.Background()))

	done := make(chan struct{})
	p.Go(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task submitted after Stop never ran")
	}
	assert.Equal(t, uint64(1), p.Stats().Overflow)
}

func TestPoolSurvivesPanics(t *testing.T) {
	p := pool.New(pool.WithWorkers(1))

	done := make(chan struct{})
	p.Go(func() { panic("boom") })
	p.Go(func() { close(done) })
	<-done

	require.NoError(t, p.Stop(context.Background()))
	assert.Equal(t, uint64(1), p.Stats().Panicked)
}

func TestPoolBacksEmitter(t *testing.T) {
	ctx := context.Background()
	p := pool.New(pool.WithWorkers(3))

	e, err := slots.NewEmitter(slots.Supports[int](), slots.WithExecutor(p))
	require.NoError(t, err)

	var sum atomic.Int64
	for i := 0; i < 5; i++ {
		_, err := slots.ConnectFunc(e, func(ctx context.Context, n int) error {
			sum.Add(int64(n))
			return nil
		})
		require.NoError(t, err)
	}

	assert.Equal(t, 5, slots.Broadcast(ctx, e, 2))
	require.NoError(t, e.Close(ctx))
	require.NoError(t, p.Stop(ctx))
	assert.Equal(t, int64(10), sum.Load())
	assert.Equal(t, uint64(5), p.Stats().Executed)
}

type shipment struct{ Crates int }

type crate struct{ ID int }

func TestPoolNestedBroadcastDoesNotBlock(t *testing.T) {
	p := pool.New(pool.WithWorkers(1), pool.WithQueueSize(1))
	defer p.Stop(context.Background())

	e, err := slots.NewEmitter(
		slots.Supports[shipment](),
		slots.Supports[crate](),
		slots.WithExecutor(p),
	)
	require.NoError(t, err)

	var unpacked atomic.Int32
	for i := 0; i < 3; i++ {
		_, err := slots.ConnectFunc(e, func(ctx context.Context, c crate) error {
			unpacked.Add(1)
			return nil
		})
		require.NoError(t, err)
	}
	_, err = slots.ConnectFunc(e, func(ctx context.Context, s shipment) error {
		slots.Broadcast(ctx, e, crate{ID: s.Crates})
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 1, slots.Broadcast(context.Background(), e, shipment{Crates: 3}))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, e.Scope().Drain(ctx))
	assert.Equal(t, int32(3), unpacked.Load())
	assert.Equal(t, uint64(2), p.Stats().Overflow)

	require.NoError(t, e.Close(ctx))
	require.NoError(t, p.Stop(ctx))
}

func TestPoolGoNeverBlocksWhenFull(t *testing.T) {
	p := pool.New(pool.WithWorkers(1), pool.WithQueueSize(1))

	gate := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(4)
	for i := 0; i < 4; i++ {
		p.Go(func() {
			defer wg.Done()
			<-gate
		})
	}
	assert.GreaterOrEqual(t, p.Stats().Overflow, uint64(2))

	close(gate)
	wg.Wait()
	require.NoError(t, p.Stop(context.Background()))
}
