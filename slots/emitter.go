package slots

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync/atomic"
)

type store interface {
	signal() string
	size() int
	expireAll() int
}

var emitterIDs atomic.Uint64

// Emitter owns one Store per supported signal type and a single Scope shared by
// all of them. Embed it in the type that raises the signals.
type Emitter struct {
	name   string
	logger *slog.Logger
	exec   Executor
	scope  *Scope
	stores map[reflect.Type]store
	closed atomic.Bool
}

// NewEmitter builds an emitter. At least one Supports option is required.
func NewEmitter(opts ...Option) (*Emitter, error) {
	cfg := config{
		name:   fmt.Sprintf("emitter-%d", emitterIDs.Add(1)),
		logger: slog.Default(),
		exec:   GoroutineExecutor,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.signals) == 0 {
		return nil, ErrNoSignals
	}

	e := &Emitter{
		name:   cfg.name,
		logger: cfg.logger.With("component", "slots", "emitter", cfg.name),
		exec:   cfg.exec,
		scope:  newScope(),
		stores: make(map[reflect.Type]store, len(cfg.signals)),
	}
	for _, declare := range cfg.signals {
		t, st := declare(e)
		if _, ok := e.stores[t]; !ok {
			e.stores[t] = st
		}
	}
	return e, nil
}

func (e *Emitter) Name() string {
	return e.name
}

// Scope returns the scope every task of this emitter is spawned into.
func (e *Emitter) Scope() *Scope {
	return e.scope
}

func (e *Emitter) Closed() bool {
	return e.closed.Load()
}

// Close stops accepting connections and broadcasts, waits for every spawned
// task to finish, then expires all slots so that outstanding connections
// resolve as closed. Slots are expired even when ctx ends before the drain.
func (e *Emitter) Close(ctx context.Context) error {
	if !e.closed.CompareAndSwap(false, true) {
		return ErrEmitterClosed
	}
	e.logger.Debug("emitter closing", "pending", e.scope.Pending())

	err := e.scope.Drain(ctx)

	expired := 0
	for _, st := range e.stores {
		expired += st.expireAll()
	}
	if err != nil {
		e.logger.Warn("emitter closed before tasks drained", "pending", e.scope.Pending(), "error", err)
		return fmt.Errorf("draining %s: %w", e.name, err)
	}
	e.logger.Debug("emitter closed", "expired", expired)
	return nil
}

// Stats is a point-in-time view of an emitter's task and slot counters.
type Stats struct {
	Spawned   uint64
	Completed uint64
	Failed    uint64
	Panicked  uint64
	Pending   int
	Slots     map[string]int
}

func (e *Emitter) Stats() Stats {
	s := Stats{
		Spawned:   e.scope.spawned.Load(),
		Completed: e.scope.completed.Load(),
		Failed:    e.scope.failed.Load(),
		Panicked:  e.scope.panicked.Load(),
		Pending:   e.scope.Pending(),
		Slots:     make(map[string]int, len(e.stores)),
	}
	for _, st := range e.stores {
		s.Slots[st.signal()] = st.size()
	}
	return s
}

func (e *Emitter) handlerFailed(signal, slot string, err error) {
	var pe *PanicError
	if errors.As(err, &pe) {
		e.logger.Warn("broadcast handler panicked", "signal", signal, "slot", slot, "panic", pe.Value, "stack", string(pe.Stack))
		return
	}
	e.logger.Debug("broadcast handler failed", "signal", signal, "slot", slot, "error", err)
}

// StoreOf returns e's store for S.
func StoreOf[S any](e *Emitter) (*Store[S], error) {
	if st, ok := e.stores[signalType[S]()].(*Store[S]); ok {
		return st, nil
	}
	return nil, fmt.Errorf("%w: %s on %s", ErrUnsupportedSignal, SignalName[S](), e.name)
}

// Connect registers h as a slot for S on e.
func Connect[S, R any](e *Emitter, h Handler[S, R], opts ...ConnectOption) (Connection[S, R], error) {
	if h == nil {
		return Connection[S, R]{}, ErrNilHandler
	}
	st, err := StoreOf[S](e)
	if err != nil {
		return Connection[S, R]{}, err
	}
	if e.closed.Load() {
		return Connection[S, R]{}, ErrEmitterClosed
	}

	cfg := connectConfig{exec: e.exec, enabled: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &slot[S]{
		id:      slotIDs.Add(1),
		name:    cfg.name,
		store:   st,
		exec:    cfg.exec,
		handler: h,
		fire: func(ctx context.Context, sig S) error {
			_, err := h(ctx, sig)
			return err
		},
	}
	if s.name == "" {
		s.name = fmt.Sprintf("%s#%d", st.name, s.id)
	}
	s.enabled.Store(cfg.enabled)

	st.insert(s)
	if e.closed.Load() {
		st.remove(s)
		return Connection[S, R]{}, ErrEmitterClosed
	}
	e.logger.Debug("slot connected", "signal", st.name, "slot", s.name, "slots", st.Len())

	return Connection[S, R]{slot: s, scope: e.scope}, nil
}

// ConnectFunc registers a handler that produces no result.
func ConnectFunc[S any](e *Emitter, fn func(ctx context.Context, sig S) error, opts ...ConnectOption) (Connection[S, Void], error) {
	if fn == nil {
		return Connection[S, Void]{}, ErrNilHandler
	}
	return Connect(e, func(ctx context.Context, sig S) (Void, error) {
		return Void{}, fn(ctx, sig)
	}, opts...)
}

// Disconnect removes c's slot from e. It reports false when the connection is
// already closed or does not belong to e.
func Disconnect[S, R any](e *Emitter, c Connection[S, R]) bool {
	st, err := StoreOf[S](e)
	if err != nil || !c.slot.live() {
		return false
	}
	return st.remove(c.slot)
}
