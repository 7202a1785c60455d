package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// statusRows is the number of rows above the playfield reserved for the score
const statusRows = 1

var styleBackground = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

// Surface draws a playfield onto a tcell screen, scaling playfield pixels to
// cells. The top row is left to the status line.
type Surface struct {
	screen tcell.Screen
	width  float64
	height float64
}

// NewSurface creates a surface for a playfield of the given size
func NewSurface(screen tcell.Screen, width, height float64) *Surface {
	return &Surface{
		screen: screen,
		width:  width,
		height: height,
	}
}

// scale returns cells per playfield pixel on each axis
func (s *Surface) scale() (float64, float64) {
	cols, rows := s.screen.Size()
	rows -= statusRows
	if rows < 1 {
		rows = 1
	}
	return float64(cols) / s.width, float64(rows) / s.height
}

// toCell maps a playfield point to the cell containing it
func (s *Surface) toCell(x, y float64) (int, int) {
	sx, sy := s.scale()
	return int(math.Floor(x * sx)), int(math.Floor(y*sy)) + statusRows
}

// FieldY maps a screen row back to the playfield y at the row's middle
func (s *Surface) FieldY(row int) float64 {
	_, sy := s.scale()
	return (float64(row-statusRows) + 0.5) / sy
}

// Clear blanks the whole screen, status row included
func (s *Surface) Clear() {
	s.screen.Fill(' ', styleBackground)
}

// FillRect paints every cell the rectangle touches, at least one
func (s *Surface) FillRect(x, y, width, height float64, clr color.Color) {
	sx, sy := s.scale()
	c0, r0 := s.toCell(x, y)
	c1 := int(math.Ceil((x + width) * sx))
	r1 := int(math.Ceil((y+height)*sy)) + statusRows
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}

	style := styleBackground.Background(toColor(clr))
	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			s.set(c, r, ' ', style)
		}
	}
}

// FillCircle paints the cells whose centers fall inside the circle. A circle
// smaller than a cell still paints the cell holding its center.
func (s *Surface) FillCircle(cx, cy, radius float64, clr color.Color) {
	sx, sy := s.scale()
	style := styleBackground.Background(toColor(clr))

	c0, r0 := s.toCell(cx-radius, cy-radius)
	c1, r1 := s.toCell(cx+radius, cy+radius)
	painted := false
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			px := (float64(c) + 0.5) / sx
			py := (float64(r-statusRows) + 0.5) / sy
			if math.Hypot(px-cx, py-cy) <= radius {
				s.set(c, r, ' ', style)
				painted = true
			}
		}
	}

	if !painted {
		c, r := s.toCell(cx, cy)
		s.set(c, r, ' ', style)
	}
}

// DashedLine samples the line once per cell along its longer axis and draws
// the samples that fall on a dash.
func (s *Surface) DashedLine(x0, y0, x1, y1, dash float64, clr color.Color) {
	sx, sy := s.scale()
	steps := int(math.Max(math.Abs((x1-x0)*sx), math.Abs((y1-y0)*sy)))
	if steps < 1 {
		steps = 1
	}

	length := math.Hypot(x1-x0, y1-y0)
	style := styleBackground.Foreground(toColor(clr))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		if int(t*length/dash)%2 != 0 {
			continue
		}
		c, r := s.toCell(x0+(x1-x0)*t, y0+(y1-y0)*t)
		s.set(c, r, '│', style)
	}
}

// DrawStatus writes text centered on the status row
func (s *Surface) DrawStatus(text string) {
	cols, _ := s.screen.Size()
	start := (cols - len(text)) / 2
	if start < 0 {
		start = 0
	}
	for i, ch := range text {
		s.screen.SetContent(start+i, 0, ch, nil, styleBackground)
	}
}

// set writes a cell, ignoring anything outside the playfield rows
func (s *Surface) set(c, r int, ch rune, style tcell.Style) {
	cols, rows := s.screen.Size()
	if c < 0 || c >= cols || r < statusRows || r >= rows {
		return
	}
	s.screen.SetContent(c, r, ch, nil, style)
}

func toColor(clr color.Color) tcell.Color {
	r, g, b, _ := clr.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
