package internal

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoller_RunsImmediatelyAndOnInterval(t *testing.T) {
	var calls atomic.Int64
	poller := NewPoller(10*time.Millisecond, func(ctx context.Context) {
		calls.Add(1)
	})

	poller.Start(context.Background())
	defer poller.Stop()

	// The first call happens right away
	deadline := time.Now().Add(time.Second)
	for calls.Load() < 1 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if calls.Load() < 1 {
		t.Fatal("poller did not run immediately")
	}

	// Subsequent calls accumulate
	for calls.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if calls.Load() < 3 {
		t.Errorf("calls = %d, want at least 3", calls.Load())
	}
}

func TestPoller_StopHaltsCalls(t *testing.T) {
	var calls atomic.Int64
	poller := NewPoller(5*time.Millisecond, func(ctx context.Context) {
		calls.Add(1)
	})

	poller.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	poller.Stop()

	// After Stop returns, the count must not move again
	settled := calls.Load()
	time.Sleep(50 * time.Millisecond)
	if got := calls.Load(); got != settled {
		t.Errorf("calls after Stop() = %d, want stable at %d", got, settled)
	}
}

func TestPoller_StopIsIdempotent(t *testing.T) {
	poller := NewPoller(time.Millisecond, func(ctx context.Context) {})

	// Stop before Start is a no-op
	poller.Stop()

	poller.Start(context.Background())
	poller.Stop()
	poller.Stop()
}

func TestPoller_StartTwiceIsNoOp(t *testing.T) {
	var calls atomic.Int64
	poller := NewPoller(time.Hour, func(ctx context.Context) {
		calls.Add(1)
	})

	poller.Start(context.Background())
	poller.Start(context.Background())
	defer poller.Stop()

	deadline := time.Now().Add(time.Second)
	for calls.Load() < 1 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	// Only the first Start's immediate call fires
	time.Sleep(20 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestPoller_ContextCancellationStops(t *testing.T) {
	var calls atomic.Int64
	poller := NewPoller(5*time.Millisecond, func(ctx context.Context) {
		calls.Add(1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	poller.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()

	// Stop still works after the context ended
	poller.Stop()
	settled := calls.Load()
	time.Sleep(30 * time.Millisecond)
	if got := calls.Load(); got != settled {
		t.Errorf("calls after cancel = %d, want stable at %d", got, settled)
	}
}
