package game

import "math/rand"

// Score holds the points of both sides
type Score struct {
	Left  int
	Right int
}

// World owns the whole simulation state: both paddles, the ball and the score.
// It is not safe for concurrent use; hosts call it from a single goroutine.
type World struct {
	Config Config

	// Human is the pointer-controlled paddle on the left
	Human Paddle

	// AI is the computer-controlled paddle on the right
	AI Paddle

	Ball Ball

	score     Score
	rng       *rand.Rand
	display   ScoreDisplay
	listeners []Listener
}

// NewWorld creates a world with both paddles centered vertically and the ball
// served from the center in a random direction. rng supplies every random
// choice the world makes.
func NewWorld(config Config, rng *rand.Rand) *World {
	paddleY := (config.Height - config.PaddleHeight) / 2

	w := &World{
		Config: config,
		Human: Paddle{
			X:      config.LeftPaddleX(),
			Y:      paddleY,
			Width:  config.PaddleWidth,
			Height: config.PaddleHeight,
		},
		AI: Paddle{
			X:      config.RightPaddleX(),
			Y:      paddleY,
			Width:  config.PaddleWidth,
			Height: config.PaddleHeight,
		},
		Ball: Ball{Size: config.BallSize},
		rng:  rng,
	}

	w.centerBall()
	w.Ball.DX = config.ServeSpeed * w.randomSign()
	w.Ball.DY = config.ServeDY * w.randomSign()

	return w
}

// Score returns the current score
func (w *World) Score() Score {
	return w.score
}

// SetScoreDisplay attaches the display that receives score changes.
// The current score is shown immediately.
func (w *World) SetScoreDisplay(display ScoreDisplay) {
	w.display = display
	w.reportScore()
}

// AddListener registers a listener for collision and scoring events
func (w *World) AddListener(l Listener) {
	w.listeners = append(w.listeners, l)
}

// Step advances the simulation by exactly one frame
func (w *World) Step() {
	w.Ball.Move()
	w.bounceOffWalls()
	w.bounceOffHuman()
	w.bounceOffAI()
	w.checkScore()
	w.trackBall()
}

// ResetBall recenters the ball and serves it horizontally in direction dir
// (+1 towards the AI, -1 towards the human) with a fresh random vertical speed.
func (w *World) ResetBall(dir float64) {
	w.centerBall()
	w.Ball.DX = w.Config.ServeSpeed * dir

	span := w.Config.ServeDYMax - w.Config.ServeDYMin
	w.Ball.DY = (w.rng.Float64()*span + w.Config.ServeDYMin) * w.randomSign()
}

func (w *World) checkScore() {
	switch {
	case w.Ball.X+w.Ball.Size < 0:
		w.score.Right++
		w.scored(SideRight)
		w.ResetBall(1)
	case w.Ball.X > w.Config.Width:
		w.score.Left++
		w.scored(SideLeft)
		w.ResetBall(-1)
	}
}

func (w *World) scored(side Side) {
	w.reportScore()
	for _, l := range w.listeners {
		l.PointScored(side, w.score)
	}
}

func (w *World) centerBall() {
	w.Ball.X = w.Config.Width/2 - w.Ball.Size/2
	w.Ball.Y = w.Config.Height/2 - w.Ball.Size/2
}

func (w *World) randomSign() float64 {
	if w.rng.Float64() < 0.5 {
		return 1
	}
	return -1
}
