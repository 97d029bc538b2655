package clock

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestClock_Ticks(t *testing.T) {
	c := New(10*time.Millisecond, zap.NewNop())

	var ticks atomic.Int64
	c.Subscribe(func(time.Time) { ticks.Add(1) })

	c.Start(context.Background())
	defer c.Stop()

	time.Sleep(100 * time.Millisecond)

	if n := ticks.Load(); n < 3 {
		t.Errorf("expected at least 3 ticks, got %d", n)
	}
}

func TestClock_StopHaltsTicks(t *testing.T) {
	c := New(10*time.Millisecond, zap.NewNop())

	var ticks atomic.Int64
	c.Subscribe(func(time.Time) { ticks.Add(1) })

	c.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	c.Stop()

	after := ticks.Load()
	time.Sleep(50 * time.Millisecond)

	if got := ticks.Load(); got != after {
		t.Errorf("ticks continued after Stop: %d -> %d", after, got)
	}
}

func TestClock_ContextCancelHaltsTicks(t *testing.T) {
	c := New(10*time.Millisecond, zap.NewNop())

	var ticks atomic.Int64
	c.Subscribe(func(time.Time) { ticks.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	c.Start(ctx)
	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)

	after := ticks.Load()
	time.Sleep(50 * time.Millisecond)

	if got := ticks.Load(); got != after {
		t.Errorf("ticks continued after context cancel: %d -> %d", after, got)
	}
}

func TestClock_NowTracksTicks(t *testing.T) {
	c := New(10*time.Millisecond, zap.NewNop())

	before := c.Now()
	c.Start(context.Background())
	defer c.Stop()

	time.Sleep(50 * time.Millisecond)

	if !c.Now().After(before) {
		t.Error("Now should advance with ticks")
	}
}

func TestClock_StopWithoutStart(t *testing.T) {
	c := New(time.Second, zap.NewNop())
	// Should not panic or block
	c.Stop()
}

func TestNew_DefaultInterval(t *testing.T) {
	c := New(0, zap.NewNop())
	if c.interval != DefaultInterval {
		t.Errorf("expected default interval, got %v", c.interval)
	}
}
