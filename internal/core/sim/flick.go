package sim

// flickSystem toggles visibility on a fixed period, used for the
// respawn grace blink and for decaying explosion particles. Clearing
// FlickEvery restores visibility at the next phase transition, not
// here.
func (e *Engine) flickSystem() {
	for _, ent := range e.world.Entities() {
		if ent.FlickEvery == 0 {
			continue
		}
		ent.flickLeft--
		if ent.flickLeft <= 0 {
			ent.flickLeft = ent.FlickEvery
			ent.Visible = !ent.Visible
		}
	}
}
