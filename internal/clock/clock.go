// Package clock provides the wall-clock ticker that drives the dashboard
// header time and session badge. It is started with the server and stops
// when the serving context is cancelled.
package clock

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultInterval is the header clock refresh rate.
const DefaultInterval = time.Second

// Clock ticks at a fixed interval and fans each tick out to subscribers.
type Clock struct {
	interval time.Duration
	logger   *zap.Logger

	mu   sync.RWMutex
	now  time.Time
	subs []func(time.Time)

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a clock. A non-positive interval falls back to DefaultInterval.
func New(interval time.Duration, logger *zap.Logger) *Clock {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Clock{
		interval: interval,
		logger:   logger,
		now:      time.Now(),
	}
}

// Subscribe registers a callback invoked on every tick. Must be called
// before Start.
func (c *Clock) Subscribe(fn func(time.Time)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

// Start begins ticking until ctx is cancelled or Stop is called.
func (c *Clock) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	c.mu.Lock()
	c.cancel = cancel
	c.done = make(chan struct{})
	done := c.done
	c.mu.Unlock()

	go func() {
		defer close(done)

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case t := <-ticker.C:
				c.tick(t)
			}
		}
	}()

	c.logger.Debug("clock started", zap.Duration("interval", c.interval))
}

// Stop cancels the ticker and waits for the tick goroutine to exit. No
// subscriber is invoked after Stop returns.
func (c *Clock) Stop() {
	c.mu.RLock()
	cancel := c.cancel
	done := c.done
	c.mu.RUnlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done

	c.logger.Debug("clock stopped")
}

// Now returns the time of the most recent tick.
func (c *Clock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *Clock) tick(t time.Time) {
	c.mu.Lock()
	c.now = t
	subs := c.subs
	c.mu.Unlock()

	for _, fn := range subs {
		fn(t)
	}
}
