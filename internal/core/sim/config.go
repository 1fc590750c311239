package sim

import "math"

// Config carries the tunables of a single simulation. DefaultConfig
// matches the classic arcade balance; the service only overrides Seed
// and field size.
type Config struct {
	Seed   int64
	Width  float64
	Height float64

	// TimeStep is the fixed simulation step in seconds.
	TimeStep float64

	StartingLives int

	// Spawner cadence and odds.
	AsteroidSpawnEvery  float64 // seconds between spawn attempts
	AsteroidSpawnChance float64
	UfoSpawnEvery       float64
	UfoSpawnChance      float64
}

func DefaultConfig() Config {
	return Config{
		Width:               800,
		Height:              600,
		TimeStep:            1.0 / 120.0,
		StartingLives:       3,
		AsteroidSpawnEvery:  0.5,
		AsteroidSpawnChance: 1.0 / 3.0,
		UfoSpawnEvery:       1.0,
		UfoSpawnChance:      1.0 / 10.0,
	}
}

// withDefaults fills zero fields so a partially specified config (seed
// and field size only) behaves like DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.TimeStep <= 0 {
		c.TimeStep = d.TimeStep
	}
	if c.StartingLives <= 0 {
		c.StartingLives = d.StartingLives
	}
	if c.AsteroidSpawnEvery <= 0 {
		c.AsteroidSpawnEvery = d.AsteroidSpawnEvery
	}
	if c.AsteroidSpawnChance <= 0 {
		c.AsteroidSpawnChance = d.AsteroidSpawnChance
	}
	if c.UfoSpawnEvery <= 0 {
		c.UfoSpawnEvery = d.UfoSpawnEvery
	}
	if c.UfoSpawnChance <= 0 {
		c.UfoSpawnChance = d.UfoSpawnChance
	}
	return c
}

// Ship and bullet balance.
const (
	shipRadius       = 12.0
	shipSpeedLimit   = 350.0
	shipDamping      = 0.998
	shipThrustForce  = 1.5
	shipTurnRate     = math.Pi // 180 deg/s
	shipWeaponEvery  = 0.1     // seconds
	shipWeaponForce  = 1000.0
	shipDeadSeconds  = 2.0
	shipSpawnSeconds = 2.0
	shipSpawnFlick   = 0.08

	bulletRadius       = 2.0
	bulletMuzzleOffset = 10.0

	ufoRadius = 15.0

	particleDamping = 0.97
)

// Asteroid size classes: bounding radius ranges and launch speeds.
var (
	asteroidRadius = map[SizeClass][2]float64{
		SizeBig:    {50, 60},
		SizeMedium: {30, 40},
		SizeSmall:  {10, 20},
	}
	asteroidSpeed = map[SizeClass][2]float64{
		SizeBig:    {30, 60},
		SizeMedium: {60, 80},
		SizeSmall:  {80, 100},
	}
)

// Points awarded for bullet kills.
var scoreValue = map[SizeClass]int{
	SizeBig:    20,
	SizeMedium: 50,
	SizeSmall:  100,
}

const scoreUfo = 200
