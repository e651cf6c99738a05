package slots_test

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/delaneyj/slotparty/slots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	I int
	S string
}

func TestEmitAggregatesMultipleConnections(t *testing.T) {
	ctx := context.Background()
	e := newEmitter(t, slots.Supports[payload]())

	con1, err := slots.Connect(e, func(ctx context.Context, sig payload) (int, error) {
		return sig.I + 10, nil
	})
	require.NoError(t, err)
	con2, err := slots.Connect(e, func(ctx context.Context, sig payload) (string, error) {
		return sig.S + " world", nil
	})
	require.NoError(t, err)

	resA, resB, err := slots.Emit2(ctx, payload{I: 5, S: "hello"}, con1, con2).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 15, resA)
	assert.Equal(t, "hello world", resB)
}

func TestEmitDisabledConnection(t *testing.T) {
	ctx := context.Background()
	e := newEmitter(t, slots.Supports[payload]())

	con, err := slots.Connect(e, func(ctx context.Context, sig payload) (int, error) {
		return sig.I, nil
	})
	require.NoError(t, err)

	con.Disable()
	agg := slots.Emit1(ctx, payload{I: 1, S: "test"}, con)
	require.ErrorIs(t, agg.Err(), slots.ErrConnectionDisabled)
	_, err = agg.Await(ctx)
	assert.ErrorIs(t, err, slots.ErrConnectionDisabled)

	con.Enable()
	res, err := slots.Emit1(ctx, payload{I: 42, S: "work"}, con).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, res)
}

func TestEmitAfterEmitterClosed(t *testing.T) {
	ctx := context.Background()

	var con slots.Connection[payload, int]
	func() {
		local, err := slots.NewEmitter(slots.Supports[payload]())
		require.NoError(t, err)
		con, err = slots.Connect(local, func(ctx context.Context, sig payload) (int, error) {
			return sig.I, nil
		})
		require.NoError(t, err)
		require.NoError(t, local.Close(ctx))
	}()

	_, err := slots.Emit1(ctx, payload{I: 1, S: "dead"}, con).Await(ctx)
	require.ErrorIs(t, err, slots.ErrConnectionClosed)
	assert.Equal(t, "connection 0: the connection has been closed", err.Error())
	assert.False(t, con.Enable())
}

func TestEmitZeroConnection(t *testing.T) {
	ctx := context.Background()
	var con slots.Connection[payload, int]
	assert.False(t, con.Connected())
	assert.Zero(t, con.ID())
	_, err := slots.Emit1(ctx, payload{}, con).Await(ctx)
	assert.ErrorIs(t, err, slots.ErrConnectionClosed)
}

type start struct{}

func TestEmitVoidSignalChain(t *testing.T) {
	ctx := context.Background()
	e := newEmitter(t, slots.Supports[start]())

	con, err := slots.Connect(e, func(ctx context.Context, _ start) (int, error) {
		return 100, nil
	})
	require.NoError(t, err)

	val, err := slots.Emit1(ctx, start{}, con).Await(ctx)
	require.NoError(t, err)
	result := "Result: " + strconv.Itoa(val*2)
	assert.Equal(t, "Result: 200", result)
}

type studentRecord struct {
	Name   string
	Age    int
	Scores []int
	Weight float64
}

func (r studentRecord) Clone() studentRecord {
	r.Scores = append([]int(nil), r.Scores...)
	return r
}

func TestEmitComplexPayload(t *testing.T) {
	ctx := context.Background()
	e := newEmitter(t, slots.Supports[studentRecord]())

	con, err := slots.Connect(e, func(ctx context.Context, r studentRecord) (float64, error) {
		if len(r.Scores) == 0 {
			return 0, nil
		}
		sum := 0
		for _, s := range r.Scores {
			sum += s
		}
		return float64(sum) / float64(len(r.Scores)) * r.Weight, nil
	})
	require.NoError(t, err)

	res, err := slots.Emit1(ctx, studentRecord{
		Name:   "Alice",
		Age:    20,
		Scores: []int{85, 90, 95, 80},
		Weight: 1.1,
	}, con).Await(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 96.25, res, 1e-9)
}

func TestEmitHandlerFailure(t *testing.T) {
	ctx := context.Background()
	e := newEmitter(t, slots.Supports[payload]())

	ok, err := slots.Connect(e, func(ctx context.Context, sig payload) (int, error) {
		return sig.I, nil
	})
	require.NoError(t, err)
	failing, err := slots.Connect(e, func(ctx context.Context, sig payload) (int, error) {
		return 0, assert.AnError
	}, slots.WithSlotName("failing"))
	require.NoError(t, err)

	_, _, err = slots.Emit2(ctx, payload{I: 1}, ok, failing).Await(ctx)
	require.ErrorIs(t, err, assert.AnError)

	var herr *slots.HandlerError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, 1, herr.Index)
	assert.Equal(t, "failing", herr.Slot)
}

func TestEmitHandlerPanic(t *testing.T) {
	ctx := context.Background()
	e := newEmitter(t, slots.Supports[payload]())

	con, err := slots.Connect(e, func(ctx context.Context, sig payload) (int, error) {
		panic("hardware failure")
	})
	require.NoError(t, err)

	_, err = slots.Emit1(ctx, payload{}, con).Await(ctx)
	require.ErrorIs(t, err, slots.ErrHandlerPanic)

	var perr *slots.PanicError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "hardware failure", perr.Value)
	assert.NotEmpty(t, perr.Stack)
}

func TestEmitValidationHasNoSideEffects(t *testing.T) {
	ctx := context.Background()
	e := newEmitter(t, slots.Supports[payload]())

	var calls atomic.Int32
	first, err := slots.Connect(e, func(ctx context.Context, sig payload) (int, error) {
		calls.Add(1)
		return 1, nil
	})
	require.NoError(t, err)
	second, err := slots.Connect(e, func(ctx context.Context, sig payload) (int, error) {
		calls.Add(1)
		return 2, nil
	})
	require.NoError(t, err)
	second.Disable()

	agg := slots.EmitAll(ctx, payload{}, first, second)
	var cerr *slots.ConnectionError
	require.True(t, errors.As(agg.Err(), &cerr))
	assert.Equal(t, 1, cerr.Index)
	assert.ErrorIs(t, cerr, slots.ErrConnectionDisabled)

	require.NoError(t, e.Scope().Drain(ctx))
	assert.Zero(t, calls.Load())
	assert.Zero(t, e.Stats().Spawned)
}

func TestEmitAllPreservesOrder(t *testing.T) {
	ctx := context.Background()
	e := newEmitter(t, slots.Supports[payload]())

	var conns []slots.Connection[payload, int]
	for i := 0; i < 8; i++ {
		con, err := slots.Connect(e, func(ctx context.Context, sig payload) (int, error) {
			return sig.I * i, nil
		})
		require.NoError(t, err)
		conns = append(conns, con)
	}

	results, err := slots.EmitAll(ctx, payload{I: 3}, conns...).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 6, 9, 12, 15, 18, 21}, results)

	_, err = slots.EmitAll[payload, int](ctx, payload{}).Await(ctx)
	assert.ErrorIs(t, err, slots.ErrNoConnections)
}

func TestEmitAcrossEmitters(t *testing.T) {
	ctx := context.Background()
	a := newEmitter(t, slots.Supports[payload]())
	b := newEmitter(t, slots.Supports[payload]())

	ca, err := slots.Connect(a, func(ctx context.Context, sig payload) (string, error) {
		return "a:" + sig.S, nil
	})
	require.NoError(t, err)
	cb, err := slots.Connect(b, func(ctx context.Context, sig payload) (string, error) {
		return "b:" + sig.S, nil
	})
	require.NoError(t, err)

	ra, rb, err := slots.Emit2(ctx, payload{S: "x"}, ca, cb).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a:x", ra)
	assert.Equal(t, "b:x", rb)

	assert.Equal(t, uint64(1), a.Stats().Spawned)
	assert.Equal(t, uint64(1), b.Stats().Spawned)
}

func TestEmitSameConnectionTwice(t *testing.T) {
	ctx := context.Background()
	e := newEmitter(t, slots.Supports[payload]())

	var calls atomic.Int32
	con, err := slots.Connect(e, func(ctx context.Context, sig payload) (int, error) {
		return int(calls.Add(1)), nil
	})
	require.NoError(t, err)

	r0, r1, err := slots.Emit2(ctx, payload{}, con, con).Await(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2}, []int{r0, r1})
}

func TestAwaitGivesUpWithContext(t *testing.T) {
	e := newEmitter(t, slots.Supports[payload]())

	release := make(chan struct{})
	con, err := slots.Connect(e, func(ctx context.Context, sig payload) (int, error) {
		<-release
		return 1, nil
	})
	require.NoError(t, err)

	agg := slots.Emit1(context.Background(), payload{}, con)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = agg.Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
	res, err := agg.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res)
}

func TestEmitFourConnections(t *testing.T) {
	ctx := context.Background()
	e := newEmitter(t, slots.Supports[payload]())

	c0, err := slots.Connect(e, func(ctx context.Context, sig payload) (int, error) { return sig.I, nil })
	require.NoError(t, err)
	c1, err := slots.Connect(e, func(ctx context.Context, sig payload) (string, error) { return sig.S, nil })
	require.NoError(t, err)
	c2, err := slots.Connect(e, func(ctx context.Context, sig payload) (bool, error) { return sig.I > 0, nil })
	require.NoError(t, err)
	c3, err := slots.Connect(e, func(ctx context.Context, sig payload) (float64, error) { return float64(sig.I) / 2, nil })
	require.NoError(t, err)

	r0, r1, r2, r3, err := slots.Emit4(ctx, payload{I: 3, S: "s"}, c0, c1, c2, c3).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, r0)
	assert.Equal(t, "s", r1)
	assert.True(t, r2)
	assert.Equal(t, 1.5, r3)
}
