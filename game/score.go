package game

// ScoreDisplay is an output with one numeric slot per side
type ScoreDisplay interface {
	ShowScore(score Score)
}

// Listener is notified of notable simulation events, e.g. to play sounds.
// Implementations must not mutate the world.
type Listener interface {
	WallBounce()
	PaddleHit(side Side)
	PointScored(side Side, score Score)
}

func (w *World) reportScore() {
	if w.display != nil {
		w.display.ShowScore(w.score)
	}
}
