package countdown

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountdown_ExpiresAfterFullDuration(t *testing.T) {
	var fired atomic.Int32
	c := New(600*time.Second, func() { fired.Add(1) })

	for i := 0; i < 599; i++ {
		require.False(t, c.Tick(), "tick %d", i+1)
	}
	assert.False(t, c.IsExpired())
	assert.Equal(t, time.Second, c.Remaining())
	assert.Equal(t, int32(0), fired.Load())

	assert.True(t, c.Tick())
	assert.True(t, c.IsExpired())
	assert.Equal(t, time.Duration(0), c.Remaining())
	assert.Equal(t, int32(1), fired.Load())
}

func TestCountdown_TicksAfterExpiryAreIgnored(t *testing.T) {
	var fired atomic.Int32
	c := New(2*time.Second, func() { fired.Add(1) })

	c.Tick()
	c.Tick()
	for i := 0; i < 10; i++ {
		assert.True(t, c.Tick())
	}

	assert.Equal(t, int32(1), fired.Load())
	assert.Equal(t, time.Duration(0), c.Remaining())
}

func TestCountdown_RunsOnClock(t *testing.T) {
	fc := clockwork.NewFakeClock()
	var fired atomic.Int32
	c := New(3*time.Second, func() { fired.Add(1) }, WithClock(fc))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c.Start(ctx)
	c.Start(ctx) // no second ticker

	for want := 2; want >= 0; want-- {
		require.NoError(t, fc.BlockUntilContext(ctx, 1))
		fc.Advance(time.Second)
		expected := time.Duration(want) * time.Second
		require.Eventually(t, func() bool { return c.Remaining() == expected },
			time.Second, 5*time.Millisecond)
	}

	require.Eventually(t, c.IsExpired, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestCountdown_CancelStopsWithoutCallback(t *testing.T) {
	fc := clockwork.NewFakeClock()
	var fired atomic.Int32
	c := New(time.Second, func() { fired.Add(1) }, WithClock(fc))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c.Start(ctx)
	require.NoError(t, fc.BlockUntilContext(ctx, 1))
	c.Cancel()

	fc.Advance(5 * time.Second)
	time.Sleep(20 * time.Millisecond)

	assert.False(t, c.IsExpired())
	assert.Equal(t, int32(0), fired.Load())
}

func TestCountdown_RestartResets(t *testing.T) {
	var fired atomic.Int32
	c := New(2*time.Second, func() { fired.Add(1) })

	c.Tick()
	c.Tick()
	require.True(t, c.IsExpired())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.Restart(ctx)
	c.Cancel()

	assert.False(t, c.IsExpired())
	assert.Equal(t, 2*time.Second, c.Remaining())

	c.Tick()
	c.Tick()
	assert.Equal(t, int32(2), fired.Load())
}

func TestUntil(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 600, Until(now.Add(10*time.Minute), now))
	assert.Equal(t, 0, Until(now.Add(-time.Minute), now))
	assert.Equal(t, 1, Until(now.Add(1500*time.Millisecond), now))
}
