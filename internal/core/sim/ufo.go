package sim

// spawnUfo rolls the saucer entrance: a side edge, a lane in the middle
// 80% of the field, and randomized speed, weapon cadence and cruise
// duration.
func (e *Engine) spawnUfo() {
	hh := (e.cfg.Height * 0.8) / 2
	hw := e.cfg.Width / 2

	y := e.rng.Float64Range(-hh, hh)
	fromRight := e.rng.Coin()

	const margin = 2 * ufoRadius
	x := -hw - margin
	dir := 1.0
	if fromRight {
		x = hw + margin
		dir = -1.0
	}

	ufo := e.world.Spawn(&Entity{
		Kind:       KindUfo,
		Pos:        Vec2{X: x, Y: y},
		Vel:        Vec2{X: dir * e.rng.Float64Range(100, 200)},
		Radius:     ufoRadius,
		Boundary:   BoundaryRemove,
		Collidable: true,
		Visible:    true,
		Ufo: &UfoState{
			Phase:     UfoCruising,
			TimerLeft: e.ticks(e.rng.Float64Range(1, 5)),
		},
		Weapon: &Weapon{
			CooldownEvery: e.ticks(e.rng.Float64Range(1, 3)),
			Force:         e.rng.Float64Range(300, 500),
			Triggered:     true,
			Automatic:     true,
		},
	})
	ufo.Weapon.CooldownLeft = ufo.Weapon.CooldownEvery

	if ship := e.ship(); ship != nil {
		ufo.TargetID = ship.ID
	}
}

// ufoStateSystem alternates saucers between horizontal cruising and a
// short vertical veer toward the field center line, and keeps their
// weapons locked on the ship while it is alive.
func (e *Engine) ufoStateSystem() {
	ship := e.ship()
	shipAlive := ship != nil && ship.Ship != nil && ship.Ship.Phase == ShipAlive

	for _, ufo := range e.world.OfKind(KindUfo) {
		state := ufo.Ufo
		if state == nil {
			continue
		}

		switch state.Phase {
		case UfoCruising:
			state.TimerLeft--
			if state.TimerLeft <= 0 {
				state.Phase = UfoVeering
				state.TimerLeft = e.ticks(e.rng.Float64Range(1, 2))
				if ufo.Pos.Y > 0 {
					ufo.Vel.Y = -100
				} else {
					ufo.Vel.Y = 100
				}
			}

		case UfoVeering:
			state.TimerLeft--
			if state.TimerLeft <= 0 {
				state.Phase = UfoCruising
				state.TimerLeft = e.ticks(e.rng.Float64Range(4, 8))
				ufo.Vel.Y = 0
			}
		}

		if ufo.Weapon != nil {
			if shipAlive {
				ufo.Weapon.Triggered = true
				ufo.TargetID = ship.ID
			} else {
				ufo.Weapon.Triggered = false
				ufo.TargetID = 0
			}
		}
	}
}

// killUfo despawns a saucer with a particle burst. Only bullet kills
// score; a saucer plowing into an asteroid is its own problem.
func (e *Engine) killUfo(ufo *Entity, byBullet bool) {
	e.burst(ufo.Pos, 5, 50, 100, 0.4, 0.7)
	if byBullet {
		e.score += scoreUfo
	}
	e.world.Despawn(ufo.ID)
}
