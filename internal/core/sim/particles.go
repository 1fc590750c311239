package sim

import "math"

// burst spawns groups of 12 explosion particles in a jittered radial
// pattern around center. Particles damp out, blink fast and expire;
// they never collide.
func (e *Engine) burst(center Vec2, groups int, speedMin, speedMax, ttlMin, ttlMax float64) {
	const slices = 12
	wedge := 2 * math.Pi / slices

	for n := 0; n < slices*groups; n++ {
		angle := wedge*float64(n%slices) + e.rng.Float64Range(0, wedge)
		dir := FromAngle(angle)

		p := &Entity{
			Kind:       KindParticle,
			Pos:        center.Add(dir.Scale(e.rng.Float64Range(1, 20))),
			Vel:        dir.Scale(e.rng.Float64Range(speedMin, speedMax)),
			Radius:     1,
			Damping:    particleDamping,
			TTL:        e.ticks(e.rng.Float64Range(ttlMin, ttlMax)),
			FlickEvery: e.ticks(e.rng.Float64Range(0.02, 0.03)),
			Visible:    true,
		}
		p.flickLeft = p.FlickEvery
		e.world.Spawn(p)
	}
}
