package slots

import (
	"log/slog"
	"reflect"
)

type config struct {
	name    string
	logger  *slog.Logger
	exec    Executor
	signals []func(*Emitter) (reflect.Type, store)
}

// Option configures an Emitter.
type Option func(*config)

// Supports declares that the emitter raises signals of type S.
func Supports[S any]() Option {
	return func(c *config) {
		c.signals = append(c.signals, func(e *Emitter) (reflect.Type, store) {
			return signalType[S](), newStore[S](e)
		})
	}
}

func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithExecutor sets the executor used by slots that did not ask for one.
func WithExecutor(exec Executor) Option {
	return func(c *config) {
		if exec != nil {
			c.exec = exec
		}
	}
}

type connectConfig struct {
	name    string
	exec    Executor
	enabled bool
}

// ConnectOption configures a single slot.
type ConnectOption func(*connectConfig)

// WithSlotName names the slot in logs and handler errors.
func WithSlotName(name string) ConnectOption {
	return func(c *connectConfig) {
		c.name = name
	}
}

// OnExecutor runs the slot's tasks on exec instead of the emitter's executor.
func OnExecutor(exec Executor) ConnectOption {
	return func(c *connectConfig) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Disabled connects the slot with its gate closed.
func Disabled() ConnectOption {
	return func(c *connectConfig) {
		c.enabled = false
	}
}
