package game

import "image/color"

// Surface is a clearable drawing region the size of the playfield.
// Coordinates are playfield pixels with the origin at the top-left.
type Surface interface {
	// Clear erases everything drawn since the last Clear
	Clear()

	// FillRect fills an axis-aligned rectangle
	FillRect(x, y, width, height float64, clr color.Color)

	// FillCircle fills a circle around (cx, cy)
	FillCircle(cx, cy, radius float64, clr color.Color)

	// DashedLine strokes a line alternating dash-long segments and gaps
	DashedLine(x0, y0, x1, y1, dash float64, clr color.Color)
}

// Palette colors
var (
	ColorNet         = color.RGBA{255, 255, 255, 255}
	ColorHumanPaddle = color.RGBA{0, 255, 255, 255}
	ColorAIPaddle    = color.RGBA{255, 0, 0, 255}
	ColorBall        = color.RGBA{255, 255, 255, 255}
)

// netDash is the length of each dash and each gap of the center net
const netDash = 8.0

// Renderer paints a world onto a surface. It never changes the world.
type Renderer struct{}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render clears the surface and draws the net, both paddles and the ball
func (r *Renderer) Render(s Surface, w *World) {
	s.Clear()

	midX := w.Config.Width / 2
	s.DashedLine(midX, 0, midX, w.Config.Height, netDash, ColorNet)

	r.drawPaddle(s, &w.Human, ColorHumanPaddle)
	r.drawPaddle(s, &w.AI, ColorAIPaddle)

	b := &w.Ball
	radius := b.Size / 2
	s.FillCircle(b.X+radius, b.Y+radius, radius, ColorBall)
}

func (r *Renderer) drawPaddle(s Surface, p *Paddle, clr color.Color) {
	s.FillRect(p.X, p.Y, p.Width, p.Height, clr)
}
