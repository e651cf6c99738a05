package slots_test

import (
	"context"
	"testing"

	"github.com/delaneyj/slotparty/slots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionsDispose(t *testing.T) {
	ctx := context.Background()
	e := inlineEmitter(t, slots.Supports[tick](), slots.Supports[msg]())

	calls := 0
	a, err := slots.ConnectFunc(e, func(ctx context.Context, sig tick) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	b, err := slots.Connect(e, func(ctx context.Context, sig msg) (int, error) {
		calls++
		return len(sig.Text), nil
	})
	require.NoError(t, err)

	subs := slots.NewSubscriptions(a)
	assert.True(t, subs.Add(b))
	assert.False(t, subs.Add(b))
	assert.Equal(t, 2, subs.Len())

	slots.Broadcast(ctx, e, tick{})
	slots.Broadcast(ctx, e, msg{Text: "x"})
	assert.Equal(t, 2, calls)

	assert.Equal(t, 2, subs.Dispose())
	assert.Zero(t, subs.Len())
	assert.False(t, a.Connected())
	assert.False(t, b.Connected())

	assert.Zero(t, slots.Broadcast(ctx, e, tick{}))
	assert.Equal(t, 2, calls)
}

func TestSubscriptionsSkipClosed(t *testing.T) {
	e := inlineEmitter(t, slots.Supports[tick]())

	con, err := slots.ConnectFunc(e, func(ctx context.Context, sig tick) error { return nil })
	require.NoError(t, err)
	require.True(t, con.Disconnect())

	subs := slots.NewSubscriptions()
	assert.False(t, subs.Add(con))
	assert.Zero(t, subs.Len())
}

func TestSubscriptionsRemove(t *testing.T) {
	e := inlineEmitter(t, slots.Supports[tick]())

	keep, err := slots.ConnectFunc(e, func(ctx context.Context, sig tick) error { return nil })
	require.NoError(t, err)
	drop, err := slots.ConnectFunc(e, func(ctx context.Context, sig tick) error { return nil })
	require.NoError(t, err)

	subs := slots.NewSubscriptions(keep, drop)
	assert.True(t, subs.Remove(drop))
	assert.False(t, subs.Remove(drop))
	assert.False(t, drop.Connected())
	assert.True(t, keep.Connected())
	assert.Equal(t, 1, subs.Len())

	// already gone through another path
	require.True(t, keep.Disconnect())
	assert.Zero(t, subs.Dispose())
}
