// Package pool provides a bounded worker pool that can back slot execution.
package pool

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

var ErrStopped = errors.New("pool is stopped")

// Pool runs tasks on a fixed set of worker goroutines fed by a bounded queue.
// It satisfies slots.Executor.
type Pool struct {
	workers   int
	queueSize int

	mu      sync.RWMutex // guards queue against close while Go is sending
	queue   chan func()
	stopped bool
	wg      sync.WaitGroup

	submitted atomic.Uint64
	executed  atomic.Uint64
	overflow  atomic.Uint64
	panicked  atomic.Uint64
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithQueueSize sets how many tasks may wait for a worker before Go spills
// over onto extra goroutines.
func WithQueueSize(n int) Option {
	return func(p *Pool) {
		if n >= 0 {
			p.queueSize = n
		}
	}
}

// New creates a pool and starts its workers.
func New(opts ...Option) *Pool {
	p := &Pool{
		workers:   runtime.GOMAXPROCS(0),
		queueSize: 1024,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.queue = make(chan func(), p.queueSize)

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.queue {
		p.run(task)
	}
}

func (p *Pool) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			p.panicked.Add(1)
		}
		p.executed.Add(1)
	}()
	task()
}

// Go queues task for a worker and never blocks. When the queue is full, or
// once the pool is stopped, the task runs on its own goroutine instead, so a
// submitted task always runs.
func (p *Pool) Go(task func()) {
	p.submitted.Add(1)

	p.mu.RLock()
	if !p.stopped {
		select {
		case p.queue <- task:
			p.mu.RUnlock()
			return
		default:
		}
	}
	p.mu.RUnlock()

	p.overflow.Add(1)
	go p.run(task)
}

// Stop closes the queue and waits for the workers to finish what was queued,
// or until ctx is done.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return ErrStopped
	}
	p.stopped = true
	close(p.queue)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Running reports whether the pool still accepts work onto its queue.
func (p *Pool) Running() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return !p.stopped
}

// Stats is a point-in-time view of the pool's counters.
type Stats struct {
	Workers    int
	Submitted  uint64
	Executed   uint64
	Overflow   uint64 // tasks run outside the workers: queue full or pool stopped
	Panicked   uint64
	QueueDepth int
}

func (p *Pool) Stats() Stats {
	return Stats{
		Workers:    p.workers,
		Submitted:  p.submitted.Load(),
		Executed:   p.executed.Load(),
		Overflow:   p.overflow.Load(),
		Panicked:   p.panicked.Load(),
		QueueDepth: len(p.queue),
	}
}
