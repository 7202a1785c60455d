package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handleInput samples the pointer and keyboard once per tick
func (g *Game) handleInput() {
	// Only a cursor that actually moved counts as a pointer event, so held
	// keys are not overridden by a resting mouse.
	x, y := ebiten.CursorPosition()
	if !g.cursorSeen || x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		g.cursorSeen = true
		g.world.PointerMoved(float64(y))
	}

	speed := g.world.Config.PaddleSpeed
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		g.world.NudgeHuman(-speed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		g.world.NudgeHuman(speed)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug.ShowStats = !g.debug.ShowStats
	}

	// Alt+Enter toggles fullscreen
	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt)
	altEnter := altPressed && ebiten.IsKeyPressed(ebiten.KeyEnter)
	if altEnter && !g.prevAltEnter {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	g.prevAltEnter = altEnter
}
