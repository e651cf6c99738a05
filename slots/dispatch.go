package slots

import "context"

// Broadcast fires sig at every enabled slot of e for S and returns at once with
// the number of tasks spawned. Disabled and since-removed slots are skipped and
// handler failures are never reported to the caller.
func Broadcast[S any](ctx context.Context, e *Emitter, sig S) int {
	st, err := StoreOf[S](e)
	if err != nil {
		e.logger.Warn("broadcast dropped", "error", err)
		return 0
	}
	return st.broadcast(ctx, st.load(), sig, nil)
}

// checkDirect validates handles in order; the first failure wins.
func checkDirect[S any](targets ...*slot[S]) error {
	for i, s := range targets {
		if err := s.check(); err != nil {
			return &ConnectionError{Index: i, Err: err}
		}
	}
	return nil
}

func slotsOf[S, R any](conns []Connection[S, R]) []*slot[S] {
	targets := make([]*slot[S], len(conns))
	for i, c := range conns {
		targets[i] = c.slot
	}
	return targets
}

func spawnAll[S, R any](ctx context.Context, sig S, conns []Connection[S, R]) *Aggregate[R] {
	a := &Aggregate[R]{futures: make([]*Future[R], len(conns))}
	for i, c := range conns {
		a.futures[i] = spawnTracked(ctx, c, copyOf(sig))
	}
	return a
}

// EmitAll sends sig to exactly the given connections, which may belong to
// different emitters, and collects their results in order. Validation happens
// before anything is spawned; a closed or disabled connection fails the whole
// call with no side effects.
func EmitAll[S, R any](ctx context.Context, sig S, conns ...Connection[S, R]) *Aggregate[R] {
	if len(conns) == 0 {
		return &Aggregate[R]{err: ErrNoConnections}
	}
	if err := checkDirect(slotsOf(conns)...); err != nil {
		return &Aggregate[R]{err: err}
	}
	return spawnAll(ctx, sig, conns)
}

// CaptureAll broadcasts sig on e while collecting the results of the named
// connections. Named slots run once through the tracked path and are left out
// of the broadcast; every other enabled slot runs once through the broadcast.
func CaptureAll[S, R any](ctx context.Context, e *Emitter, sig S, conns ...Connection[S, R]) *Aggregate[R] {
	if len(conns) == 0 {
		return &Aggregate[R]{err: ErrNoConnections}
	}
	c, err := beginCapture(e, slotsOf(conns)...)
	if err != nil {
		return &Aggregate[R]{err: err}
	}
	a := spawnAll(ctx, sig, conns)
	c.broadcast(ctx, sig)
	return a
}

type capture[S any] struct {
	store *Store[S]
	snap  *snapshot[S]
	named slotSet
}

// beginCapture checks that every target is live, named once and a member of
// the current snapshot of e's store, then runs the direct validation. The
// snapshot it validated against is the one the broadcast later uses.
func beginCapture[S any](e *Emitter, targets ...*slot[S]) (*capture[S], error) {
	st, err := StoreOf[S](e)
	if err != nil {
		return nil, err
	}
	snap := st.load()

	named := newSlotSet(len(targets))
	for i, s := range targets {
		if !s.live() {
			return nil, &ConnectionError{Index: i, Err: ErrConnectionClosed}
		}
		if !named.insert(s.id) {
			return nil, &ConnectionError{Index: i, Err: ErrConnectionForeignOrDuplicate}
		}
	}

	found := 0
	for _, s := range snap.slots {
		if named.contains(s.id) {
			found++
		}
	}
	if found != len(targets) {
		return nil, ErrConnectionForeignOrDuplicate
	}

	if err := checkDirect(targets...); err != nil {
		return nil, err
	}
	return &capture[S]{store: st, snap: snap, named: named}, nil
}

func (c *capture[S]) broadcast(ctx context.Context, sig S) int {
	return c.store.broadcast(ctx, c.snap, sig, &c.named)
}
