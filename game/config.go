package game

import (
	"errors"
	"fmt"
	"time"
)

// Config holds game configuration constants
type Config struct {
	// Width is the playfield width in pixels
	Width float64

	// Height is the playfield height in pixels
	Height float64

	// PaddleWidth is the thickness of both paddles
	PaddleWidth float64

	// PaddleHeight is the length of both paddles
	PaddleHeight float64

	// PaddleMargin is the gap between a paddle and its side wall
	PaddleMargin float64

	// PaddleSpeed is how far keyboard input moves the human paddle per frame
	PaddleSpeed float64

	// AISpeed is how far the AI paddle moves per frame
	AISpeed float64

	// BallSize is the side length of the ball's bounding square
	BallSize float64

	// ServeSpeed is the horizontal speed of a freshly served ball
	ServeSpeed float64

	// ServeDY is the vertical speed of the opening serve
	ServeDY float64

	// ServeDYMin and ServeDYMax bound the vertical speed after a point, [min, max)
	ServeDYMin float64
	ServeDYMax float64

	// BounceFactor multiplies the horizontal speed on every paddle hit
	BounceFactor float64

	// SpinFactor scales the off-center impact distance into vertical speed
	SpinFactor float64

	// WinScore is the nominal match length. Nothing reads it.
	WinScore int

	// FramePeriod is the tick interval for hosts that schedule their own frames
	FramePeriod time.Duration
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Width:        800,
		Height:       500,
		PaddleWidth:  12,
		PaddleHeight: 80,
		PaddleMargin: 18,
		PaddleSpeed:  5,
		AISpeed:      4,
		BallSize:     14,
		ServeSpeed:   5,
		ServeDY:      3,
		ServeDYMin:   2,
		ServeDYMax:   6,
		BounceFactor: 1.1,
		SpinFactor:   0.15,
		WinScore:     10,
		FramePeriod:  time.Second / 60,
	}
}

// LeftPaddleX returns the x coordinate of the human paddle
func (c Config) LeftPaddleX() float64 {
	return c.PaddleMargin
}

// RightPaddleX returns the x coordinate of the AI paddle
func (c Config) RightPaddleX() float64 {
	return c.Width - c.PaddleMargin - c.PaddleWidth
}

var errNonPositive = errors.New("must be positive")

// Validate reports dimensions that would leave the playfield without a
// meaningful geometry. DefaultConfig always validates.
func (c Config) Validate() error {
	dims := []struct {
		name  string
		value float64
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"paddle width", c.PaddleWidth},
		{"paddle height", c.PaddleHeight},
		{"ball size", c.BallSize},
	}
	for _, d := range dims {
		if d.value <= 0 {
			return fmt.Errorf("%s %v: %w", d.name, d.value, errNonPositive)
		}
	}
	if c.PaddleHeight > c.Height {
		return fmt.Errorf("paddle height %v exceeds playfield height %v", c.PaddleHeight, c.Height)
	}
	if c.BallSize >= c.Height {
		return fmt.Errorf("ball size %v does not fit playfield height %v", c.BallSize, c.Height)
	}
	if 2*(c.PaddleMargin+c.PaddleWidth) >= c.Width {
		return fmt.Errorf("paddles overlap on a playfield %v wide", c.Width)
	}
	if c.ServeDYMax < c.ServeDYMin {
		return fmt.Errorf("serve range [%v, %v) is empty", c.ServeDYMin, c.ServeDYMax)
	}
	return nil
}
