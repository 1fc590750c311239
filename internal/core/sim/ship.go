package sim

// installSpawningShip resets the ship entity to its spawn loadout at
// the field center: controls and movement but no weapon and no
// collision, blinking until the grace period ends.
func (e *Engine) installSpawningShip(ship *Entity) {
	ship.Pos = Vec2{}
	ship.Rot = 0
	ship.Vel = Vec2{}
	ship.AngVel = 0
	ship.Radius = shipRadius
	ship.SpeedLimit = shipSpeedLimit
	ship.Damping = shipDamping
	ship.Boundary = BoundaryWrap
	ship.Thrust = &ThrustEngine{Force: shipThrustForce}
	ship.Steering = shipTurnRate
	ship.Collidable = false
	ship.Visible = true
	ship.FlickEvery = e.ticks(shipSpawnFlick)
	ship.flickLeft = ship.FlickEvery
	ship.Weapon = nil
}

// shipStateSystem drives the respawn cycle:
// ALIVE -> (killShip) -> DEAD -> SPAWNING -> ALIVE.
func (e *Engine) shipStateSystem() {
	ship := e.ship()
	if ship == nil || ship.Ship == nil {
		return
	}
	state := ship.Ship

	switch state.Phase {
	case ShipAlive:

	case ShipDead:
		state.TimerLeft--
		if state.TimerLeft <= 0 {
			state.Phase = ShipSpawning
			state.TimerLeft = e.ticks(shipSpawnSeconds)
			e.installSpawningShip(ship)
		}

	case ShipSpawning:
		state.TimerLeft--
		if state.TimerLeft <= 0 {
			state.Phase = ShipAlive
			ship.Collidable = true
			ship.FlickEvery = 0
			ship.Visible = true
			ship.Weapon = &Weapon{
				CooldownEvery: e.ticks(shipWeaponEvery),
				CooldownLeft:  e.ticks(shipWeaponEvery),
				Force:         shipWeaponForce,
			}
		}
	}
}

// killShip strips the ship down to its state machine, spends a life and
// throws a wide particle burst. The last life ends the run.
func (e *Engine) killShip(ship *Entity) {
	if ship.Ship == nil || ship.Ship.Phase != ShipAlive {
		return
	}
	e.burst(ship.Pos, 6, 150, 250, 1.0, 1.5)

	ship.Ship.Phase = ShipDead
	ship.Ship.TimerLeft = e.ticks(shipDeadSeconds)
	ship.Collidable = false
	ship.Visible = false
	ship.Weapon = nil
	ship.Thrust = nil
	ship.Steering = 0
	ship.Vel = Vec2{}
	ship.AngVel = 0
	ship.FlickEvery = 0

	e.lives--
	if e.lives <= 0 {
		e.status = StatusGameOver
	}
}
