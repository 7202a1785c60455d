package game

// PointerMoved places the human paddle so its center follows the pointer.
// y is measured from the top edge of the playfield. The last call wins.
func (w *World) PointerMoved(y float64) {
	w.Human.Y = y - w.Human.Height/2
	w.Human.Clamp(w.Config.Height)
}

// NudgeHuman moves the human paddle by dy, for keyboard control
func (w *World) NudgeHuman(dy float64) {
	w.Human.Y += dy
	w.Human.Clamp(w.Config.Height)
}
