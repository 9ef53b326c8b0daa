package transport

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/agentstation/birdmap/pkg/errors"
)

// Pacer spaces out consecutive requests to the same site. The first Wait
// returns immediately; later ones sleep a fixed delay, or a uniform random
// delay in [min, max] when max > min.
type Pacer struct {
	min, max time.Duration

	mu      sync.Mutex
	started bool
	sleep   func(ctx context.Context, d time.Duration) error
}

// NewPacer creates a pacer. A max below min is treated as max == min.
func NewPacer(min, max time.Duration) *Pacer {
	if min < 0 {
		min = 0
	}
	if max < min {
		max = min
	}
	return &Pacer{min: min, max: max, sleep: sleepContext}
}

// Delay returns the next delay to apply.
func (p *Pacer) Delay() time.Duration {
	if p.max <= p.min {
		return p.min
	}
	return p.min + rand.N(p.max-p.min+1)
}

// Wait blocks before a request. It returns a canceled error if ctx ends first.
func (p *Pacer) Wait(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		p.started = true
		return nil
	}
	d := p.Delay()
	if d <= 0 {
		return nil
	}
	return p.sleep(ctx, d)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return errors.Join(errors.ErrCanceled, ctx.Err())
	case <-t.C:
		return nil
	}
}
