package sim

// boundarySystem handles entities that cross the field edge. Wrapped
// entities teleport to the opposite edge once they are two radii out;
// removable entities despawn at the same margin.
func (e *Engine) boundarySystem() {
	hw := e.cfg.Width / 2
	hh := e.cfg.Height / 2

	for _, ent := range e.world.Entities() {
		m := ent.Radius * 2
		switch ent.Boundary {
		case BoundaryWrap:
			if ent.Pos.X+m < -hw {
				ent.Pos.X = hw + m
			} else if ent.Pos.X-m > hw {
				ent.Pos.X = -hw - m
			}
			if ent.Pos.Y+m < -hh {
				ent.Pos.Y = hh + m
			} else if ent.Pos.Y-m > hh {
				ent.Pos.Y = -hh - m
			}
		case BoundaryRemove:
			if ent.Pos.X+m < -hw || ent.Pos.X-m > hw ||
				ent.Pos.Y+m < -hh || ent.Pos.Y-m > hh {
				e.world.Despawn(ent.ID)
			}
		}
	}
}
