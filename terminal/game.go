package terminal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"pong/game"
)

// keyNudgeFrames is how many frames of paddle movement one key event is worth
const keyNudgeFrames = 4

// ScoreBoard is the status-row score display
type ScoreBoard struct {
	score game.Score
}

// ShowScore records the score for the next status-row draw
func (b *ScoreBoard) ShowScore(score game.Score) {
	b.score = score
}

func (b *ScoreBoard) String() string {
	return fmt.Sprintf("%d   %d", b.score.Left, b.score.Right)
}

// Game runs a world on a tcell screen
type Game struct {
	screen  tcell.Screen
	world   *game.World
	surface *Surface
	driver  *game.Driver
	scores  *ScoreBoard
	cancel  context.CancelFunc
}

// NewScreen creates and initializes a terminal screen with mouse motion reporting
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	screen.SetStyle(styleBackground)
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	return screen, nil
}

// New wires a world to an initialized screen
func New(screen tcell.Screen, world *game.World) *Game {
	surface := NewSurface(screen, world.Config.Width, world.Config.Height)
	scores := &ScoreBoard{}
	world.SetScoreDisplay(scores)

	return &Game{
		screen:  screen,
		world:   world,
		surface: surface,
		scores:  scores,
		driver: &game.Driver{
			World:    world,
			Renderer: game.NewRenderer(),
			Surface:  surface,
		},
	}
}

// Run ticks the game every period until ctx is cancelled or the player quits.
// Quitting is not an error.
func (g *Game) Run(ctx context.Context, period time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g.cancel = cancel

	inbox := make(chan func(), 64)
	go g.pump(ctx, inbox)

	err := game.NewLoop(period, g.Frame).Run(ctx, inbox)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pump forwards screen events into the loop's inbox. It ends when the screen
// is finalized or ctx is done.
func (g *Game) pump(ctx context.Context, inbox chan<- func()) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case inbox <- func() { g.HandleEvent(ev) }:
		case <-ctx.Done():
			return
		}
	}
}

// Frame steps the world, paints it and shows the result
func (g *Game) Frame() {
	g.driver.Tick()
	g.surface.DrawStatus(g.scores.String())
	g.screen.Show()
}

// HandleEvent applies one screen event to the world
func (g *Game) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		_, row := ev.Position()
		if row >= statusRows {
			g.world.PointerMoved(g.surface.FieldY(row))
		}

	case *tcell.EventKey:
		step := g.world.Config.PaddleSpeed * keyNudgeFrames
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			g.quit()
		case ev.Key() == tcell.KeyUp:
			g.world.NudgeHuman(-step)
		case ev.Key() == tcell.KeyDown:
			g.world.NudgeHuman(step)
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				g.quit()
			case 'w':
				g.world.NudgeHuman(-step)
			case 's':
				g.world.NudgeHuman(step)
			}
		}

	case *tcell.EventResize:
		g.screen.Sync()
	}
}

func (g *Game) quit() {
	if g.cancel != nil {
		g.cancel()
	}
}
