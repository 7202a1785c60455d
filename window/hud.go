package window

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"pong/game"
)

const (
	scoreScale = 3
	scoreTop   = 12
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// scoreText is the on-screen score display, one number above each half
type scoreText struct {
	score game.Score
}

// ShowScore records the score for the next frame
func (s *scoreText) ShowScore(score game.Score) {
	s.score = score
}

func (s *scoreText) draw(dst *ebiten.Image, fieldWidth float64) {
	drawCentered(dst, strconv.Itoa(s.score.Left), fieldWidth/4, scoreTop)
	drawCentered(dst, strconv.Itoa(s.score.Right), fieldWidth*3/4, scoreTop)
}

func drawCentered(dst *ebiten.Image, str string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scoreScale, scoreScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(dst, str, hudFace, op)
}

// DebugState holds the overlay toggles
type DebugState struct {
	ShowStats bool // Show tick rate, frame rate and ball state
}

func drawStats(dst *ebiten.Image, w *game.World) {
	b := &w.Ball
	line := fmt.Sprintf("TPS %.0f  FPS %.0f  ball %.0f,%.0f  v %.2f,%.2f",
		ebiten.ActualTPS(), ebiten.ActualFPS(), b.X, b.Y, b.DX, b.DY)

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, w.Config.Height-20)
	op.ColorScale.ScaleWithColor(color.RGBA{0, 255, 0, 255})
	text.Draw(dst, line, hudFace, op)
}
