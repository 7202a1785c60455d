package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pong/game"
)

// Game adapts a world to ebiten, which calls Update and Draw once per tick
type Game struct {
	world    *game.World
	renderer *game.Renderer
	surface  Surface
	scores   scoreText
	debug    DebugState

	// Last cursor position seen, to detect pointer movement
	cursorX, cursorY int
	cursorSeen       bool

	prevAltEnter bool
}

// New creates a window game for the world
func New(world *game.World) *Game {
	g := &Game{
		world:    world,
		renderer: game.NewRenderer(),
	}
	world.SetScoreDisplay(&g.scores)
	return g
}

// Update samples input and advances the simulation one frame
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.handleInput()
	g.world.Step()
	return nil
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.dst = screen
	g.renderer.Render(&g.surface, g.world)
	g.scores.draw(screen, g.world.Config.Width)

	if g.debug.ShowStats {
		drawStats(screen, g.world)
	}
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.world.Config.Width), int(g.world.Config.Height)
}
