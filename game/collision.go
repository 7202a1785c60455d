package game

// bounceOffWalls reflects the ball off the top and bottom walls and pulls it
// back inside the playfield.
func (w *World) bounceOffWalls() {
	b := &w.Ball

	if b.Y < 0 {
		b.Y = 0
		b.DY = -b.DY
		w.wallBounced()
	}
	if b.Y+b.Size > w.Config.Height {
		b.Y = w.Config.Height - b.Size
		b.DY = -b.DY
		w.wallBounced()
	}
}

// bounceOffHuman sends the ball back to the right when it overlaps the left paddle
func (w *World) bounceOffHuman() {
	p := &w.Human
	if !w.Ball.Overlaps(p) {
		return
	}

	// Sit the ball on the paddle face so it does not sink in
	w.Ball.X = p.X + p.Width
	w.deflect(p)
	w.paddleHit(SideLeft)
}

// bounceOffAI sends the ball back to the left when it overlaps the right paddle
func (w *World) bounceOffAI() {
	p := &w.AI
	if !w.Ball.Overlaps(p) {
		return
	}

	w.Ball.X = p.X - w.Ball.Size
	w.deflect(p)
	w.paddleHit(SideRight)
}

// deflect reverses and speeds up the ball, then adds spin proportional to how
// far from the paddle's center it struck. Hits above center push the ball up.
func (w *World) deflect(p *Paddle) {
	w.Ball.DX *= -w.Config.BounceFactor

	impact := w.Ball.CenterY() - p.CenterY()
	w.Ball.DY += impact * w.Config.SpinFactor
}

func (w *World) wallBounced() {
	for _, l := range w.listeners {
		l.WallBounce()
	}
}

func (w *World) paddleHit(side Side) {
	for _, l := range w.listeners {
		l.PaddleHit(side)
	}
}
