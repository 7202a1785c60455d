package game

import (
	"context"
	"time"
)

// Driver runs one frame: a simulation step followed by a render pass
type Driver struct {
	World    *World
	Renderer *Renderer
	Surface  Surface
}

// Tick advances the world once and paints the result
func (d *Driver) Tick() {
	d.World.Step()
	d.Renderer.Render(d.Surface, d.World)
}

// Loop calls a tick function at a fixed period. Work posted to the inbox runs
// between ticks on the loop's goroutine, so neither ever overlaps the other.
type Loop struct {
	period time.Duration
	tick   func()
}

// NewLoop creates a loop that calls tick every period
func NewLoop(period time.Duration, tick func()) *Loop {
	return &Loop{
		period: period,
		tick:   tick,
	}
}

// Run ticks until ctx is done and returns ctx.Err(). A nil inbox is allowed.
func (l *Loop) Run(ctx context.Context, inbox <-chan func()) error {
	ticker := time.NewTicker(l.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-inbox:
			fn()
		case <-ticker.C:
			// A tick and a cancellation can be ready together
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.tick()
		}
	}
}
