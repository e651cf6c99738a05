package slots

// Connection is a non-owning handle on a slot. Copies are cheap and refer to
// the same slot; the zero value behaves as a closed connection. Once the slot
// leaves its store every operation on the handle degrades to a no-op.
type Connection[S, R any] struct {
	slot  *slot[S]
	scope *Scope
}

// Enable opens the slot's gate. It reports false when the connection is closed.
func (c Connection[S, R]) Enable() bool {
	if !c.slot.live() {
		return false
	}
	c.slot.enabled.Store(true)
	return true
}

// Disable closes the slot's gate; broadcasts skip it and direct emission
// rejects it. It reports false when the connection is closed.
func (c Connection[S, R]) Disable() bool {
	if !c.slot.live() {
		return false
	}
	c.slot.enabled.Store(false)
	return true
}

func (c Connection[S, R]) Enabled() bool {
	return c.slot.live() && c.slot.enabled.Load()
}

func (c Connection[S, R]) Connected() bool {
	return c.slot.live()
}

// ID is the slot's process-unique id, 0 for the zero Connection.
func (c Connection[S, R]) ID() uint64 {
	if c.slot == nil {
		return 0
	}
	return c.slot.id
}

func (c Connection[S, R]) Name() string {
	if c.slot == nil {
		return ""
	}
	return c.slot.name
}

// Disconnect removes the slot from the store it was connected to.
func (c Connection[S, R]) Disconnect() bool {
	if !c.slot.live() {
		return false
	}
	return c.slot.store.remove(c.slot)
}
