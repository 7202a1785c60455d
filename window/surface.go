package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// netWidth is the stroke width of the dashed center line
const netWidth = 2

var colorBackground = color.RGBA{0, 0, 0, 255}

// Surface draws onto an ebiten image. dst is replaced every frame.
type Surface struct {
	dst *ebiten.Image
}

// Clear fills the image with the background color
func (s *Surface) Clear() {
	s.dst.Fill(colorBackground)
}

// FillRect draws a filled rectangle
func (s *Surface) FillRect(x, y, width, height float64, clr color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(width), float32(height), clr, false)
}

// FillCircle draws a filled, antialiased circle
func (s *Surface) FillCircle(cx, cy, radius float64, clr color.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(radius), clr, true)
}

// DashedLine strokes alternating dash-long segments and gaps from (x0, y0) to (x1, y1)
func (s *Surface) DashedLine(x0, y0, x1, y1, dash float64, clr color.Color) {
	length := math.Hypot(x1-x0, y1-y0)
	if length == 0 || dash <= 0 {
		return
	}
	ux, uy := (x1-x0)/length, (y1-y0)/length

	for start := 0.0; start < length; start += 2 * dash {
		end := math.Min(start+dash, length)
		vector.StrokeLine(s.dst,
			float32(x0+ux*start), float32(y0+uy*start),
			float32(x0+ux*end), float32(y0+uy*end),
			netWidth, clr, false)
	}
}
