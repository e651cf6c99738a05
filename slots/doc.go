// Package slots is an in-process, type-safe signal/slot dispatch engine.
//
// An Emitter declares the signal types it raises with Supports. Consumers
// Connect handlers to a signal type and get back a Connection, a non-owning
// handle used to enable, disable, disconnect or target the slot. Handlers
// always run as tasks on an Executor, never on the emitting goroutine.
//
// Three emission protocols are provided:
//
//   - Broadcast fires every enabled slot and forgets about it.
//   - EmitAll and Emit1..Emit4 target explicit connections and return an
//     aggregate of their results.
//   - CaptureAll and Capture1..Capture4 broadcast while collecting the results
//     of the named connections.
//
// Slot stores are copy-on-write snapshots behind an atomic pointer, so emission
// never blocks on connect or disconnect. Emitter.Close waits for every spawned
// task before expiring the emitter's slots.
package slots
