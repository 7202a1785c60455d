package game

// Side identifies one half of the playfield
type Side int

const (
	// SideLeft is the human player's side
	SideLeft Side = iota
	// SideRight is the AI's side
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Paddle is a fixed-size rectangle that only moves vertically
type Paddle struct {
	// Position of the top-left corner
	X, Y float64

	// Fixed dimensions
	Width, Height float64
}

// CenterY returns the vertical center of the paddle
func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

// Clamp keeps the paddle inside a playfield of the given height
func (p *Paddle) Clamp(fieldHeight float64) {
	p.Y = clamp(p.Y, 0, fieldHeight-p.Height)
}

// Ball is the moving square whose collisions drive the game
type Ball struct {
	// Position of the top-left corner of the bounding square
	X, Y float64

	// Velocity in pixels per frame
	DX, DY float64

	// Side length of the bounding square
	Size float64
}

// Move advances the ball by one frame of velocity
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// CenterY returns the vertical center of the ball
func (b *Ball) CenterY() float64 {
	return b.Y + b.Size/2
}

// Overlaps reports whether the ball's box strictly overlaps the paddle's box.
// Touching edges do not count.
func (b *Ball) Overlaps(p *Paddle) bool {
	return b.X < p.X+p.Width &&
		b.X+b.Size > p.X &&
		b.Y < p.Y+p.Height &&
		b.Y+b.Size > p.Y
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
