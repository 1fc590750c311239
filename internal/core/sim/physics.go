package sim

// physicsSystem integrates motion for one fixed timestep: damping
// first, then the speed limit, then position and rotation.
func (e *Engine) physicsSystem() {
	dt := e.cfg.TimeStep
	for _, ent := range e.world.Entities() {
		if ent.Damping > 0 {
			ent.Vel = ent.Vel.Scale(ent.Damping)
		}
		if ent.SpeedLimit > 0 {
			ent.Vel = ent.Vel.ClampLength(ent.SpeedLimit)
		}
		ent.Pos = ent.Pos.Add(ent.Vel.Scale(dt))
		ent.Rot += ent.AngVel * dt
	}
}
