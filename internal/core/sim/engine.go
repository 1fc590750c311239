// Package sim implements a deterministic, tick-based Asteroids arcade
// simulation. The engine owns all randomness through a single seeded
// source and walks entities in spawn order, so a seed plus an input
// schedule fully determines every snapshot. It performs no I/O and
// holds no clocks; callers decide when ticks happen.
package sim

type Status string

const (
	StatusRunning  Status = "RUNNING"
	StatusGameOver Status = "GAME_OVER"
)

// Input is the held control state for the ship. Turn is -1 (clockwise),
// 0 or +1 (counter-clockwise). Fire is edge-triggered: one trigger per
// SetInput call.
type Input struct {
	Turn   int
	Thrust bool
	Fire   bool
}

// asteroidSpawn is a queued request to materialize an asteroid on the
// next tick.
type asteroidSpawn struct {
	Pos    Vec2
	Radius float64
	Size   SizeClass
}

type Engine struct {
	cfg    Config
	world  *World
	rng    *rng
	tick   uint64
	score  int
	lives  int
	status Status

	input  Input
	shipID EntityID

	asteroidTimer    int
	ufoTimer         int
	pendingAsteroids []asteroidSpawn
}

// NewEngine creates a running simulation with the ship queued to spawn
// at the field center.
func NewEngine(cfg Config) *Engine {
	cfg = cfg.withDefaults()
	e := &Engine{
		cfg:    cfg,
		world:  NewWorld(),
		rng:    newRNG(cfg.Seed),
		lives:  cfg.StartingLives,
		status: StatusRunning,
	}
	e.asteroidTimer = e.ticks(cfg.AsteroidSpawnEvery)
	e.ufoTimer = e.ticks(cfg.UfoSpawnEvery)

	ship := &Entity{
		Kind: KindShip,
		Ship: &ShipState{Phase: ShipSpawning, TimerLeft: 0},
	}
	e.installSpawningShip(ship)
	e.shipID = e.world.Spawn(ship).ID
	return e
}

func (e *Engine) Tick() uint64   { return e.tick }
func (e *Engine) Score() int     { return e.score }
func (e *Engine) Lives() int     { return e.lives }
func (e *Engine) Status() Status { return e.status }
func (e *Engine) Config() Config { return e.cfg }
func (e *Engine) World() *World  { return e.world }

// SetInput replaces the held control state. Turn and thrust persist
// until the next call; fire triggers at most one shot.
func (e *Engine) SetInput(in Input) {
	if in.Turn > 1 {
		in.Turn = 1
	}
	if in.Turn < -1 {
		in.Turn = -1
	}
	e.input = in
}

// Advance steps the simulation n ticks. A finished engine is inert.
func (e *Engine) Advance(n int) {
	for i := 0; i < n; i++ {
		e.Step()
	}
}

// Step runs one fixed-timestep tick through the system pipeline. The
// phase order is part of the behavior contract; reordering changes
// outcomes for identical seeds.
func (e *Engine) Step() {
	if e.status != StatusRunning {
		return
	}
	e.tick++

	e.controlSystem()
	e.weaponSystem()
	e.thrustSystem()
	e.spawnSystem()
	e.generateAsteroids()
	e.shipStateSystem()
	e.ufoStateSystem()
	e.physicsSystem()

	hits := e.collisionSystem()
	e.resolveHits(hits)
	e.world.Reap()

	e.boundarySystem()
	e.expirationSystem()
	e.flickSystem()
	e.world.Reap()
}

// ticks converts a duration in seconds to at least one tick.
func (e *Engine) ticks(seconds float64) int {
	n := int(seconds/e.cfg.TimeStep + 0.5)
	if n < 1 {
		n = 1
	}
	return n
}

func (e *Engine) ship() *Entity {
	return e.world.Get(e.shipID)
}

// controlSystem applies the held input to the ship. Dead or spawning
// ships have no steering, thrust or weapon, so input is inert.
func (e *Engine) controlSystem() {
	ship := e.ship()
	if ship == nil {
		return
	}
	if ship.Steering > 0 {
		ship.AngVel = float64(e.input.Turn) * ship.Steering
	}
	if ship.Thrust != nil {
		ship.Thrust.On = e.input.Thrust
	}
	if e.input.Fire {
		if ship.Weapon != nil {
			ship.Weapon.Triggered = true
		}
		e.input.Fire = false
	}
}

func (e *Engine) thrustSystem() {
	for _, ent := range e.world.Entities() {
		if ent.Thrust == nil || !ent.Thrust.On {
			continue
		}
		ent.Vel = ent.Vel.Add(FromAngle(ent.Rot).Scale(ent.Thrust.Force))
	}
}

// weaponSystem ticks cooldowns and fires triggered weapons. Bullets
// spawn just outside the owner's bounding circle, aimed at the weapon
// target when one is set, otherwise along the owner's heading.
func (e *Engine) weaponSystem() {
	for _, ent := range e.world.Entities() {
		w := ent.Weapon
		if w == nil {
			continue
		}
		if w.CooldownLeft > 0 {
			w.CooldownLeft--
		}
		if w.CooldownLeft > 0 || !w.Triggered {
			continue
		}
		w.CooldownLeft = w.CooldownEvery
		if !w.Automatic {
			w.Triggered = false
		}

		dir := FromAngle(ent.Rot)
		if target := e.world.Get(ent.TargetID); target != nil {
			dir = target.Pos.Sub(ent.Pos).Normalize()
		}
		muzzle := ent.Pos.Add(dir.Scale(ent.Radius + bulletMuzzleOffset))

		e.world.Spawn(&Entity{
			Kind:       KindBullet,
			Pos:        muzzle,
			Vel:        dir.Scale(w.Force),
			Radius:     bulletRadius,
			Boundary:   BoundaryRemove,
			Collidable: true,
			Visible:    true,
		})
	}
}
