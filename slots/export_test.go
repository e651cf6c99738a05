package slots

// SnapshotOf exposes the version and length of one atomically loaded snapshot.
func SnapshotOf[S any](st *Store[S]) (version uint64, length int) {
	snap := st.load()
	return snap.version, len(snap.slots)
}

func NewSlotSet(n int) *slotSet {
	t := newSlotSet(n)
	return &t
}

func (t *slotSet) Insert(id uint64) bool   { return t.insert(id) }
func (t *slotSet) Contains(id uint64) bool { return t.contains(id) }
func (t *slotSet) Cap() int                { return len(t.buckets) }
