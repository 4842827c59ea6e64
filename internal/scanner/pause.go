package scanner

import (
	"context"
	"sync"
	"time"
)

// Pauser is a cooperative pause/resume gate for worker goroutines. While
// paused, Wait blocks until the scan is resumed or its context ends.
type Pauser struct {
	mu          sync.Mutex
	resumed     chan struct{} // closed when running; replaced on pause
	paused      bool
	pausedSince time.Time
	totalPaused time.Duration
}

// NewPauser creates a Pauser in the running (unpaused) state.
func NewPauser() *Pauser {
	ch := make(chan struct{})
	close(ch)
	return &Pauser{resumed: ch}
}

// Wait blocks while the scan is paused. It returns ctx.Err() if ctx is
// done before the scan resumes.
func (p *Pauser) Wait(ctx context.Context) error {
	p.mu.Lock()
	gate := p.resumed
	p.mu.Unlock()

	select {
	case <-gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Toggle flips between paused and running states.
// Returns the new paused state (true = now paused).
func (p *Pauser) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.paused {
		p.resumeLocked()
	} else {
		p.paused = true
		p.pausedSince = time.Now()
		p.resumed = make(chan struct{})
	}
	return p.paused
}

// Resume unpauses the scan. It is a no-op when not paused.
func (p *Pauser) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.paused {
		p.resumeLocked()
	}
}

func (p *Pauser) resumeLocked() {
	p.totalPaused += time.Since(p.pausedSince)
	p.paused = false
	close(p.resumed)
}

// PausedDuration returns the total accumulated time spent paused,
// including any ongoing pause.
func (p *Pauser) PausedDuration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	d := p.totalPaused
	if p.paused {
		d += time.Since(p.pausedSince)
	}
	return d
}
