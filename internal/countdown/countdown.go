// Package countdown implements the booking hold timer: a one-second countdown that
// fires an expiry callback exactly once per run.
package countdown

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const step = time.Second

type Option func(*Countdown)

func WithClock(c clockwork.Clock) Option {
	return func(cd *Countdown) {
		cd.clock = c
	}
}

type Countdown struct {
	mu        sync.Mutex
	clock     clockwork.Clock
	total     time.Duration
	remaining time.Duration
	expired   bool
	onExpire  func()
	stop      chan struct{}
}

func New(total time.Duration, onExpire func(), opts ...Option) *Countdown {
	c := &Countdown{
		clock:     clockwork.NewRealClock(),
		total:     total,
		remaining: total,
		onExpire:  onExpire,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins ticking once per second until expiry, Cancel or ctx is done.
// Calling Start on a running or expired countdown does nothing.
func (c *Countdown) Start(ctx context.Context) {
	c.mu.Lock()
	if c.stop != nil || c.expired {
		c.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	c.stop = stop
	ticker := c.clock.NewTicker(step)
	c.mu.Unlock()

	go c.run(ctx, ticker, stop)
}

func (c *Countdown) run(ctx context.Context, ticker clockwork.Ticker, stop chan struct{}) {
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			c.detach(stop)
			return
		case <-stop:
			return
		case <-ticker.Chan():
			if c.tick(stop) {
				return
			}
		}
	}
}

// Tick advances the countdown by one second and reports whether it is now expired.
// The expiry callback runs on the tick that reaches zero and never again until Restart.
func (c *Countdown) Tick() bool {
	return c.tick(nil)
}

// tick is Tick for a ticker goroutine: a run that was cancelled or restarted
// stops instead of counting down.
func (c *Countdown) tick(run chan struct{}) bool {
	c.mu.Lock()
	if c.expired || (run != nil && c.stop != run) {
		c.mu.Unlock()
		return true
	}
	c.remaining -= step
	if c.remaining > 0 {
		c.mu.Unlock()
		return false
	}
	c.remaining = 0
	c.expired = true
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
	cb := c.onExpire
	c.mu.Unlock()

	if cb != nil {
		cb()
	}
	return true
}

// Cancel stops a running countdown without firing the callback.
func (c *Countdown) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}

// Restart resets the countdown to its full duration and starts it again.
func (c *Countdown) Restart(ctx context.Context) {
	c.Cancel()
	c.mu.Lock()
	c.remaining = c.total
	c.expired = false
	c.mu.Unlock()
	c.Start(ctx)
}

func (c *Countdown) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

func (c *Countdown) IsExpired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expired
}

func (c *Countdown) detach(stop chan struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop == stop {
		c.stop = nil
	}
}

// Until returns the whole seconds left before deadline, never negative.
func Until(deadline, now time.Time) int {
	left := deadline.Sub(now)
	if left <= 0 {
		return 0
	}
	return int(left / time.Second)
}
