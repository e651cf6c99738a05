package slots

import (
	"context"
	"slices"
	"sync/atomic"
)

type snapshot[S any] struct {
	version uint64
	slots   []*slot[S]
}

// Store is the registry of slots for one signal type on one emitter. Readers
// load a single immutable snapshot; writers publish a new one by
// compare-and-swap and retry on conflict.
type Store[S any] struct {
	owner *Emitter
	name  string
	snap  atomic.Pointer[snapshot[S]]
}

func newStore[S any](owner *Emitter) *Store[S] {
	st := &Store[S]{owner: owner, name: SignalName[S]()}
	st.snap.Store(&snapshot[S]{})
	return st
}

func (st *Store[S]) load() *snapshot[S] {
	return st.snap.Load()
}

// Name is the signal type's name.
func (st *Store[S]) Name() string {
	return st.name
}

// Len is the number of slots in the current snapshot.
func (st *Store[S]) Len() int {
	return len(st.load().slots)
}

// Version increases by one with every published snapshot.
func (st *Store[S]) Version() uint64 {
	return st.load().version
}

func (st *Store[S]) insert(s *slot[S]) {
	for {
		old := st.snap.Load()
		next := &snapshot[S]{
			version: old.version + 1,
			slots:   make([]*slot[S], len(old.slots), len(old.slots)+1),
		}
		copy(next.slots, old.slots)
		next.slots = append(next.slots, s)
		if st.snap.CompareAndSwap(old, next) {
			return
		}
	}
}

// remove unpublishes s and marks it expired. Of several racing removals of the
// same slot exactly one reports true.
func (st *Store[S]) remove(s *slot[S]) bool {
	for {
		old := st.snap.Load()
		i := slices.Index(old.slots, s)
		if i < 0 {
			return false
		}
		next := &snapshot[S]{
			version: old.version + 1,
			slots:   make([]*slot[S], 0, len(old.slots)-1),
		}
		next.slots = append(next.slots, old.slots[:i]...)
		next.slots = append(next.slots, old.slots[i+1:]...)
		if st.snap.CompareAndSwap(old, next) {
			s.expired.Store(true)
			st.owner.logger.Debug("slot disconnected", "signal", st.name, "slot", s.name, "slots", len(next.slots))
			return true
		}
	}
}

func (st *Store[S]) expireAll() int {
	for {
		old := st.snap.Load()
		if st.snap.CompareAndSwap(old, &snapshot[S]{version: old.version + 1}) {
			for _, s := range old.slots {
				s.expired.Store(true)
			}
			return len(old.slots)
		}
	}
}

func (st *Store[S]) signal() string { return st.name }
func (st *Store[S]) size() int      { return st.Len() }

// broadcast spawns every enabled, live slot of snap except those in skip.
func (st *Store[S]) broadcast(ctx context.Context, snap *snapshot[S], sig S, skip *slotSet) int {
	e := st.owner
	if e.closed.Load() {
		return 0
	}
	n := 0
	for _, s := range snap.slots {
		if !s.enabled.Load() || s.expired.Load() {
			continue
		}
		if skip != nil && skip.contains(s.id) {
			continue
		}
		s.spawnDetached(ctx, e, copyOf(sig))
		n++
	}
	return n
}
