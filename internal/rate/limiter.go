// Package rate paces outbound API calls so Gmail quotas are respected.
package rate

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Limiter gates outbound API calls.
type Limiter interface {
	Wait(ctx context.Context) error
}

// Pacer spaces calls at a fixed minimum interval derived from a
// requests-per-second budget. The first call proceeds immediately.
type Pacer struct {
	mu       sync.Mutex
	interval time.Duration
	next     time.Time
}

// NewPacer returns a pacer allowing rps calls per second. Non-positive rps
// is treated as 1.
func NewPacer(rps int) *Pacer {
	if rps <= 0 {
		rps = 1
	}
	return &Pacer{interval: time.Second / time.Duration(rps)}
}

// Wait blocks until the caller's slot arrives or the context is canceled.
func (p *Pacer) Wait(ctx context.Context) error {
	p.mu.Lock()
	now := time.Now()
	if p.next.Before(now) {
		p.next = now
	}
	delay := p.next.Sub(now)
	p.next = p.next.Add(p.interval)
	p.mu.Unlock()

	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("rate wait canceled: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

var _ Limiter = (*Pacer)(nil)
