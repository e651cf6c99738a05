package slots

import (
	"context"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// Scope tracks every task spawned on behalf of an emitter so that teardown can
// wait for all of them, fire-and-forget or not.
type Scope struct {
	mu      sync.Mutex
	pending int
	idle    chan struct{}

	spawned   atomic.Uint64
	completed atomic.Uint64
	failed    atomic.Uint64
	panicked  atomic.Uint64
}

func newScope() *Scope {
	idle := make(chan struct{})
	close(idle)
	return &Scope{idle: idle}
}

func (s *Scope) acquire() {
	s.mu.Lock()
	if s.pending == 0 {
		s.idle = make(chan struct{})
	}
	s.pending++
	s.mu.Unlock()
	s.spawned.Add(1)
}

func (s *Scope) release(err error) {
	if err != nil {
		s.failed.Add(1)
	}
	s.completed.Add(1)

	s.mu.Lock()
	s.pending--
	if s.pending == 0 {
		close(s.idle)
	}
	s.mu.Unlock()
}

// Pending returns the number of tasks that have been spawned but not finished.
func (s *Scope) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Drain blocks until no task is outstanding or ctx is done. Tasks spawned by
// running tasks are waited for as well.
func (s *Scope) Drain(ctx context.Context) error {
	for {
		s.mu.Lock()
		if s.pending == 0 {
			s.mu.Unlock()
			return nil
		}
		idle := s.idle
		s.mu.Unlock()

		select {
		case <-idle:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// spawnTask counts fn as outstanding, runs it on exec and hands its outcome to
// done. Panics in fn are recovered into a *PanicError.
func spawnTask[R any](s *Scope, exec Executor, fn func() (R, error), done func(R, error)) {
	s.acquire()
	exec.Go(func() {
		v, err := protect(s, fn)
		defer s.release(err)
		done(v, err)
	})
}

func protect[R any](s *Scope, fn func() (R, error)) (v R, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.panicked.Add(1)
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return fn()
}
