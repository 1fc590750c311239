package sim

import "math"

// spawnSystem runs the timed spawners. Each cadence tick rolls the dice
// once; most rolls spawn nothing, which keeps the field from flooding.
func (e *Engine) spawnSystem() {
	e.asteroidTimer--
	if e.asteroidTimer <= 0 {
		e.asteroidTimer = e.ticks(e.cfg.AsteroidSpawnEvery)
		if e.rng.Chance(e.cfg.AsteroidSpawnChance) {
			e.queueEdgeAsteroid()
		}
	}

	e.ufoTimer--
	if e.ufoTimer <= 0 {
		e.ufoTimer = e.ticks(e.cfg.UfoSpawnEvery)
		if e.rng.Chance(e.cfg.UfoSpawnChance) {
			e.spawnUfo()
		}
	}
}

// queueEdgeAsteroid picks a size class and a position just outside a
// random field edge, and queues the spawn for the next generation pass.
func (e *Engine) queueEdgeAsteroid() {
	hw := e.cfg.Width / 2
	hh := e.cfg.Height / 2

	x := e.rng.Float64Range(-hw, hw)
	y := e.rng.Float64Range(-hh, hh)

	var size SizeClass
	switch e.rng.IntRange(1, 4) {
	case 3:
		size = SizeBig
	case 2:
		size = SizeMedium
	default:
		size = SizeSmall
	}
	r := asteroidRadius[size]
	radius := e.rng.Float64Range(r[0], r[1])
	margin := radius * 2

	var pos Vec2
	if e.rng.Coin() {
		pos = Vec2{X: x, Y: hh + margin}
		if y <= 0 {
			pos.Y = -hh - margin
		}
	} else {
		pos = Vec2{X: hw + margin, Y: y}
		if x <= 0 {
			pos.X = -hw - margin
		}
	}

	e.pendingAsteroids = append(e.pendingAsteroids, asteroidSpawn{
		Pos:    pos,
		Radius: radius,
		Size:   size,
	})
}

// generateAsteroids materializes queued spawns: velocity aimed at a
// random point inside the field, spin, and a jittered polygon outline.
// Smaller rocks fly faster.
func (e *Engine) generateAsteroids() {
	if len(e.pendingAsteroids) == 0 {
		return
	}
	spawns := e.pendingAsteroids
	e.pendingAsteroids = nil

	hw := e.cfg.Width / 2
	hh := e.cfg.Height / 2

	for _, s := range spawns {
		target := Vec2{
			X: e.rng.Float64Range(-hw, hw),
			Y: e.rng.Float64Range(-hh, hh),
		}
		speed := asteroidSpeed[s.Size]
		vel := target.Sub(s.Pos).Normalize().Scale(e.rng.Float64Range(speed[0], speed[1]))

		e.world.Spawn(&Entity{
			Kind:       KindAsteroid,
			Pos:        s.Pos,
			Vel:        vel,
			AngVel:     e.rng.Float64Range(-3, 3),
			Radius:     s.Radius,
			Size:       s.Size,
			Points:     e.asteroidOutline(s.Radius),
			Boundary:   BoundaryRemove,
			Collidable: true,
			Visible:    true,
		})
	}
}

// asteroidOutline builds a closed 6..11-gon with radial jitter so every
// rock looks different. Points are in local coordinates.
func (e *Engine) asteroidOutline(radius float64) []Vec2 {
	sides := e.rng.IntRange(6, 12)
	n := float64(sides)
	internal := (n - 2) * math.Pi / n
	offset := -internal / 2
	step := 2 * math.Pi / n

	points := make([]Vec2, 0, sides)
	for i := 0; i < sides; i++ {
		angle := float64(i)*step + offset
		points = append(points, Vec2{
			X: radius * e.rng.Float64Range(0.5, 1.2) * math.Cos(angle),
			Y: radius * e.rng.Float64Range(0.5, 1.2) * math.Sin(angle),
		})
	}
	return points
}

// splitCounts maps a dying asteroid to its shards and burst width.
var splitCounts = map[SizeClass]struct {
	shards int
	into   SizeClass
	groups int
}{
	SizeBig:    {shards: 2, into: SizeMedium, groups: 5},
	SizeMedium: {shards: 3, into: SizeSmall, groups: 3},
	SizeSmall:  {shards: 0, groups: 1},
}

// killAsteroid scores the kill, queues shards for the next tick and
// despawns the rock with a burst sized to its class.
func (e *Engine) killAsteroid(a *Entity) {
	split := splitCounts[a.Size]

	if split.shards > 0 {
		r := asteroidRadius[split.into]
		radius := e.rng.Float64Range(r[0], r[1])
		for i := 0; i < split.shards; i++ {
			e.pendingAsteroids = append(e.pendingAsteroids, asteroidSpawn{
				Pos:    a.Pos,
				Radius: radius,
				Size:   split.into,
			})
		}
	}

	e.burst(a.Pos, split.groups, 50, 100, 0.4, 0.7)
	e.score += scoreValue[a.Size]
	e.world.Despawn(a.ID)
}
