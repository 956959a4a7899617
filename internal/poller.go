package internal

import (
	"context"
	"sync"
	"time"
)

// Poller invokes a function immediately and then on a fixed interval until
// stopped. Errors are the callback's concern; background consumers such as
// the unread counter deliberately ignore them.
//
// The caller owns the lifecycle: a poller that is never stopped keeps firing
// against a view that no longer exists.
type Poller struct {
	interval time.Duration
	fn       func(ctx context.Context)

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	started bool
}

// NewPoller creates a poller that runs fn every interval.
func NewPoller(interval time.Duration, fn func(ctx context.Context)) *Poller {
	return &Poller{interval: interval, fn: fn}
}

// Start begins polling. fn runs once right away, then once per interval.
// Starting an already-started poller is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	p.started = true

	go func() {
		defer close(p.done)
		p.fn(ctx)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.fn(ctx)
			}
		}
	}()
}

// Stop halts polling and waits for the loop to exit; after Stop returns, fn
// will not be invoked again. Stopping a stopped or never-started poller is a
// no-op.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return
	}
	p.started = false
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	cancel()
	<-done
}
