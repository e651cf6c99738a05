package slots

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrConnectionClosed is returned when a connection's slot is no longer
	// registered with any emitter.
	ErrConnectionClosed = errors.New("the connection has been closed")

	// ErrConnectionDisabled is returned by direct and capture emission when a
	// named connection is live but disabled.
	ErrConnectionDisabled = errors.New("the connection has been disabled")

	// ErrConnectionForeignOrDuplicate is returned by capture emission when a
	// named connection is not connected to the emitter or is named twice.
	ErrConnectionForeignOrDuplicate = errors.New("the connection is not connected to the emitter or is named more than once")

	ErrNoConnections     = errors.New("at least one connection is required")
	ErrUnsupportedSignal = errors.New("signal is not supported by the emitter")
	ErrEmitterClosed     = errors.New("emitter is closed")
	ErrNoSignals         = errors.New("emitter must support at least one signal")
	ErrNilHandler        = errors.New("handler cannot be nil")
	ErrHandlerPanic      = errors.New("handler panicked")
)

// ConnectionError reports which handle failed validation.
type ConnectionError struct {
	Index int
	Err   error
}

func (e *ConnectionError) Error() string {
	return "connection " + strconv.Itoa(e.Index) + ": " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// HandlerError wraps the failure of a tracked task.
type HandlerError struct {
	Index int
	Slot  string
	Err   error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler %d (%s): %v", e.Index, e.Slot, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// PanicError carries a recovered panic value and the stack at the point of panic.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("handler panicked: %v", e.Value)
}

func (e *PanicError) Is(target error) bool {
	return target == ErrHandlerPanic
}
