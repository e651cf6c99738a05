package slots

import (
	"context"
	"sync/atomic"
)

// Handler is a slot's body. It receives its own copy of the signal.
type Handler[S, R any] func(ctx context.Context, sig S) (R, error)

var slotIDs atomic.Uint64

type slot[S any] struct {
	id      uint64
	name    string
	store   *Store[S]
	exec    Executor
	handler any // Handler[S, R] for the R the slot was connected with
	fire    func(ctx context.Context, sig S) error

	enabled atomic.Bool
	expired atomic.Bool
}

func (s *slot[S]) live() bool {
	return s != nil && !s.expired.Load()
}

func (s *slot[S]) check() error {
	if !s.live() {
		return ErrConnectionClosed
	}
	if !s.enabled.Load() {
		return ErrConnectionDisabled
	}
	return nil
}

// spawnDetached runs the slot as a fire-and-forget task in the owning
// emitter's scope. Failures are logged, never returned.
func (s *slot[S]) spawnDetached(ctx context.Context, e *Emitter, sig S) {
	spawnTask(e.scope, s.exec, func() (Void, error) {
		return Void{}, s.fire(ctx, sig)
	}, func(_ Void, err error) {
		if err != nil {
			e.handlerFailed(s.store.name, s.name, err)
		}
	})
}

func spawnTracked[S, R any](ctx context.Context, c Connection[S, R], sig S) *Future[R] {
	s := c.slot
	h := s.handler.(Handler[S, R])
	f := newFuture[R](s.name)
	spawnTask(c.scope, s.exec, func() (R, error) {
		return h(ctx, sig)
	}, f.resolve)
	return f
}
