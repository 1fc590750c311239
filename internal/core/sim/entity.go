package sim

// EntityID identifies an entity within a single world. IDs are allocated
// sequentially and never reused, so they double as spawn order.
type EntityID uint64

type Kind string

const (
	KindShip     Kind = "SHIP"
	KindAsteroid Kind = "ASTEROID"
	KindUfo      Kind = "UFO"
	KindBullet   Kind = "BULLET"
	KindParticle Kind = "PARTICLE"
)

// SizeClass buckets asteroids for splitting, speed and scoring.
type SizeClass string

const (
	SizeBig    SizeClass = "BIG"
	SizeMedium SizeClass = "MEDIUM"
	SizeSmall  SizeClass = "SMALL"
)

// BoundaryMode selects what happens when an entity leaves the field.
type BoundaryMode uint8

const (
	BoundaryNone BoundaryMode = iota
	BoundaryWrap
	BoundaryRemove
)

type ShipPhase string

const (
	ShipAlive    ShipPhase = "ALIVE"
	ShipDead     ShipPhase = "DEAD"
	ShipSpawning ShipPhase = "SPAWNING"
)

// ShipState tracks the respawn cycle. TimerLeft counts down in ticks
// while the ship is dead or spawning.
type ShipState struct {
	Phase     ShipPhase
	TimerLeft int
}

type UfoPhase string

const (
	UfoCruising UfoPhase = "CRUISING"
	UfoVeering  UfoPhase = "VEERING"
)

// UfoState tracks the saucer movement cycle: cruise horizontally for a
// while, then veer vertically before settling back.
type UfoState struct {
	Phase     UfoPhase
	TimerLeft int
}

// Weapon fires a bullet when triggered and off cooldown. Automatic
// weapons re-trigger themselves every cooldown (saucers); manual ones
// need an explicit trigger per shot (the ship).
type Weapon struct {
	CooldownEvery int // ticks between shots
	CooldownLeft  int
	Force         float64 // bullet speed
	Triggered     bool
	Automatic     bool
}

// ThrustEngine accelerates the entity along its heading while on.
type ThrustEngine struct {
	Force float64
	On    bool
}

// Entity is a bag of optional components. A zero value in a component
// field (nil pointer, zero damping, zero TTL) means the matching system
// skips the entity.
type Entity struct {
	ID   EntityID
	Kind Kind

	Pos    Vec2
	Rot    float64 // radians, 0 = facing +X
	Vel    Vec2
	AngVel float64

	Damping    float64 // velocity multiplier per tick; 0 = none
	SpeedLimit float64 // max speed; 0 = unlimited
	Radius     float64 // bounding circle

	Boundary   BoundaryMode
	Collidable bool
	Visible    bool

	TTL        int // remaining ticks; 0 = immortal
	FlickEvery int // visibility toggle period in ticks; 0 = steady
	flickLeft  int

	// Asteroid outline in local coordinates, for clients to render.
	Points []Vec2
	Size   SizeClass

	Weapon   *Weapon
	TargetID EntityID // weapon aim assist; 0 = fire along heading
	Thrust   *ThrustEngine
	Steering float64 // max turn rate in rad/s; 0 = no steering control

	Ship *ShipState
	Ufo  *UfoState

	dead bool
}
