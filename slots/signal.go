package slots

import "reflect"

// Void is the payload of signals that carry no fields and the result of
// handlers that produce nothing.
type Void = struct{}

// Cloner is implemented by signals whose fields share memory (slices, maps,
// pointers). Every spawned handler then receives its own Clone.
type Cloner[S any] interface {
	Clone() S
}

func copyOf[S any](sig S) S {
	if c, ok := any(sig).(Cloner[S]); ok {
		return c.Clone()
	}
	return sig
}

func signalType[S any]() reflect.Type {
	return reflect.TypeOf((*S)(nil)).Elem()
}

// SignalName returns the name used for S in logs and errors.
func SignalName[S any]() string {
	return signalType[S]().String()
}
