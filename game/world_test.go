package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func newTestWorld(t *testing.T) *World {
	t.Helper()
	return NewWorld(DefaultConfig(), rand.New(rand.NewSource(1)))
}

// placeBall puts the ball somewhere away from both paddles and walls unless overridden
func placeBall(w *World, x, y, dx, dy float64) {
	w.Ball.X, w.Ball.Y = x, y
	w.Ball.DX, w.Ball.DY = dx, dy
}

func TestNewWorld(t *testing.T) {
	w := newTestWorld(t)
	cfg := w.Config

	assert.Equal(t, 18.0, w.Human.X)
	assert.Equal(t, 770.0, w.AI.X)
	assert.Equal(t, 210.0, w.Human.Y)
	assert.Equal(t, 210.0, w.AI.Y)
	assert.Equal(t, cfg.PaddleHeight, w.Human.Height)
	assert.Equal(t, cfg.PaddleWidth, w.AI.Width)

	assert.Equal(t, 393.0, w.Ball.X)
	assert.Equal(t, 243.0, w.Ball.Y)
	assert.Equal(t, cfg.ServeSpeed, math.Abs(w.Ball.DX))
	assert.Equal(t, cfg.ServeDY, math.Abs(w.Ball.DY))

	assert.Equal(t, Score{}, w.Score())
}

func TestStep_WallReflection(t *testing.T) {
	testCases := []struct {
		name   string
		y, dy  float64
		wantY  float64
		wantDY float64
	}{
		{"Top", 0, -3, 0, 3},
		{"TopOvershoot", 1, -4, 0, 4},
		{"Bottom", 486, 3, 486, -3},
		{"BottomOvershoot", 484, 5, 486, -5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			placeBall(w, 400, tc.y, 5, tc.dy)

			w.Step()

			assert.Equal(t, 405.0, w.Ball.X)
			assert.Equal(t, tc.wantY, w.Ball.Y)
			assert.Equal(t, tc.wantDY, w.Ball.DY)
		})
	}
}

func TestStep_LeftPaddleBounceAtCenter(t *testing.T) {
	w := newTestWorld(t)
	// After the move the ball's center sits exactly on the paddle's center (250)
	placeBall(w, 30, 243, -5, 0)

	w.Step()

	assert.Equal(t, 30.0, w.Ball.X, "ball should rest on the paddle face")
	assert.InDelta(t, 5.5, w.Ball.DX, epsilon)
	assert.Equal(t, 0.0, w.Ball.DY)
	assert.Equal(t, Score{}, w.Score())
}

func TestStep_OffCenterSpin(t *testing.T) {
	testCases := []struct {
		name   string
		offset float64
		wantDY float64
	}{
		{"BelowCenter", 20, 3},
		{"AboveCenter", -20, -3},
		{"EdgeBelow", 40, 6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			centerY := w.Human.CenterY() + tc.offset
			placeBall(w, 30, centerY-w.Ball.Size/2, -5, 0)

			w.Step()

			assert.InDelta(t, tc.wantDY, w.Ball.DY, epsilon)
			assert.InDelta(t, 5.5, w.Ball.DX, epsilon)
		})
	}
}

func TestStep_RightPaddleBounce(t *testing.T) {
	w := newTestWorld(t)
	placeBall(w, 755, 263, 5, 0)

	w.Step()

	assert.Equal(t, w.AI.X-w.Ball.Size, w.Ball.X)
	assert.InDelta(t, -5.5, w.Ball.DX, epsilon)
	assert.InDelta(t, 3.0, w.Ball.DY, epsilon)
}

func TestStep_TouchingPaddleIsNotCollision(t *testing.T) {
	w := newTestWorld(t)
	// Lands with its left edge exactly on the paddle's right edge
	placeBall(w, 35, 243, -5, 0)

	w.Step()

	assert.Equal(t, 30.0, w.Ball.X)
	assert.Equal(t, -5.0, w.Ball.DX)
}

func TestStep_OverlapAlwaysBounces(t *testing.T) {
	w := newTestWorld(t)
	placeBall(w, 30, 243, -5, 0)
	w.Step()
	require.InDelta(t, 5.5, w.Ball.DX, epsilon)

	// Still overlapping on the next frame although already heading away:
	// the response is applied again and compounds the speed.
	w.Ball.X = 15
	w.Step()

	assert.Equal(t, 30.0, w.Ball.X)
	assert.InDelta(t, -6.05, w.Ball.DX, epsilon)
}

func TestStep_Scoring(t *testing.T) {
	testCases := []struct {
		name      string
		x, dx     float64
		wantScore Score
		wantSign  float64
	}{
		{"RightScores", -20, -5, Score{Right: 1}, 1},
		{"LeftScores", 795, 10, Score{Left: 1}, -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			placeBall(w, tc.x, 100, tc.dx, 2)

			w.Step()

			assert.Equal(t, tc.wantScore, w.Score())
			assert.Equal(t, 393.0, w.Ball.X)
			assert.Equal(t, 243.0, w.Ball.Y)
			assert.Equal(t, w.Config.ServeSpeed*tc.wantSign, w.Ball.DX)

			dy := math.Abs(w.Ball.DY)
			assert.GreaterOrEqual(t, dy, w.Config.ServeDYMin)
			assert.Less(t, dy, w.Config.ServeDYMax)
		})
	}
}

func TestStep_PartiallyOutDoesNotScore(t *testing.T) {
	w := newTestWorld(t)
	placeBall(w, -10, 100, -2, 0)

	w.Step()

	assert.Equal(t, Score{}, w.Score())
	assert.Equal(t, -12.0, w.Ball.X)

	placeBall(w, 790, 100, 8, 0)
	w.Step()

	assert.Equal(t, Score{}, w.Score())
	assert.Equal(t, 798.0, w.Ball.X)
}

func TestStep_AITracking(t *testing.T) {
	testCases := []struct {
		name    string
		aiY     float64
		ballY   float64
		wantAIY float64
	}{
		{"MovesDown", 210, 393, 214},
		{"MovesUp", 210, 50, 206},
		{"HoldsWhenAligned", 210, 243, 210},
		{"ClampedAtBottom", 419, 486, 420},
		{"ClampedAtTop", 2, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.AI.Y = tc.aiY
			placeBall(w, 400, tc.ballY, 0, 0)

			w.Step()

			assert.Equal(t, tc.wantAIY, w.AI.Y)
		})
	}
}

func TestStep_QuietFrameOnlyMovesBallAndAI(t *testing.T) {
	w := newTestWorld(t)
	placeBall(w, 300, 200, 3, -2)
	human := w.Human
	aiY := w.AI.Y

	w.Step()

	assert.Equal(t, 303.0, w.Ball.X)
	assert.Equal(t, 198.0, w.Ball.Y)
	assert.Equal(t, 3.0, w.Ball.DX)
	assert.Equal(t, -2.0, w.Ball.DY)
	assert.Equal(t, human, w.Human)
	assert.Equal(t, Score{}, w.Score())
	assert.InDelta(t, aiY, w.AI.Y, w.Config.AISpeed)
}

func TestStep_Invariants(t *testing.T) {
	w := newTestWorld(t)
	pointer := rand.New(rand.NewSource(7))
	maxY := w.Config.Height - w.Config.PaddleHeight

	prev := w.Score()
	for frame := 0; frame < 20000; frame++ {
		if frame%3 == 0 {
			w.PointerMoved(pointer.Float64()*700 - 100)
		}
		w.Step()

		for _, p := range []Paddle{w.Human, w.AI} {
			require.GreaterOrEqual(t, p.Y, 0.0, "frame %d", frame)
			require.LessOrEqual(t, p.Y, maxY, "frame %d", frame)
		}

		cur := w.Score()
		require.GreaterOrEqual(t, cur.Left, prev.Left)
		require.GreaterOrEqual(t, cur.Right, prev.Right)
		require.LessOrEqual(t, (cur.Left-prev.Left)+(cur.Right-prev.Right), 1, "both sides scored in frame %d", frame)
		prev = cur
	}
}

func TestStep_WinScoreHasNoEffect(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < w.Config.WinScore+5; i++ {
		placeBall(w, -20, 100, -5, 0)
		w.Step()
	}

	assert.Equal(t, w.Config.WinScore+5, w.Score().Right)
	assert.Equal(t, 0, w.Score().Left)
}

func TestResetBall_RandomVerticalSpeed(t *testing.T) {
	w := newTestWorld(t)

	var up, down int
	for i := 0; i < 500; i++ {
		w.ResetBall(-1)

		assert.Equal(t, -w.Config.ServeSpeed, w.Ball.DX)
		dy := math.Abs(w.Ball.DY)
		require.GreaterOrEqual(t, dy, 2.0)
		require.Less(t, dy, 6.0)
		if w.Ball.DY < 0 {
			up++
		} else {
			down++
		}
	}

	assert.NotZero(t, up)
	assert.NotZero(t, down)
}
