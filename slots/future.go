package slots

import "context"

// Future is the eventual result of one tracked handler task. The task is
// already running when the Future is handed out; awaiting only observes it.
type Future[R any] struct {
	slot string
	done chan struct{}
	val  R
	err  error
}

func newFuture[R any](slot string) *Future[R] {
	return &Future[R]{slot: slot, done: make(chan struct{})}
}

func (f *Future[R]) resolve(v R, err error) {
	f.val, f.err = v, err
	close(f.done)
}

// Done is closed once the task has finished.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}

// Await waits for the task or for ctx, whichever comes first. Giving up on the
// wait does not stop the task.
func (f *Future[R]) Await(ctx context.Context) (R, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

func (f *Future[R]) failure() error { return f.err }
func (f *Future[R]) slotName() string { return f.slot }

type waiter interface {
	Done() <-chan struct{}
	failure() error
	slotName() string
}

// awaitAll waits for every task and reports the lowest-index failure.
func awaitAll(ctx context.Context, ws ...waiter) error {
	for _, w := range ws {
		select {
		case <-w.Done():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	for i, w := range ws {
		if err := w.failure(); err != nil {
			return &HandlerError{Index: i, Slot: w.slotName(), Err: err}
		}
	}
	return nil
}

// Aggregate collects the ordered results of a direct or capture emission over
// connections that share a result type.
type Aggregate[R any] struct {
	err     error
	futures []*Future[R]
}

// Err reports a validation failure without waiting. Such an aggregate spawned
// nothing.
func (a *Aggregate[R]) Err() error {
	return a.err
}

// Await returns one result per connection, in connection order.
func (a *Aggregate[R]) Await(ctx context.Context) ([]R, error) {
	if a.err != nil {
		return nil, a.err
	}
	ws := make([]waiter, len(a.futures))
	for i, f := range a.futures {
		ws[i] = f
	}
	if err := awaitAll(ctx, ws...); err != nil {
		return nil, err
	}
	out := make([]R, len(a.futures))
	for i, f := range a.futures {
		out[i] = f.val
	}
	return out, nil
}
