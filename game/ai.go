package game

// trackBall moves the AI paddle one fixed step toward the ball.
// It is a bang-bang controller: full speed or nothing, never proportional.
func (w *World) trackBall() {
	p := &w.AI
	target := w.Ball.CenterY() - p.Height/2

	if p.Y < target {
		p.Y += w.Config.AISpeed
	} else if p.Y > target {
		p.Y -= w.Config.AISpeed
	}

	p.Clamp(w.Config.Height)
}
