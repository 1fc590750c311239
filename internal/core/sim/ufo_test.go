package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpawnUfo_EntersFromASide(t *testing.T) {
	e := NewEngine(Config{Seed: 1, Width: 800, Height: 600})

	e.spawnUfo()

	ufos := e.World().OfKind(KindUfo)
	assert.Len(t, ufos, 1)
	ufo := ufos[0]

	assert.InDelta(t, 400+2*ufoRadius, absf(ufo.Pos.X), 1e-9)
	assert.LessOrEqual(t, absf(ufo.Pos.Y), 0.8*300.0)
	// Moving toward the field, horizontally.
	assert.Equal(t, -1.0, sign(ufo.Pos.X)*sign(ufo.Vel.X))
	assert.Zero(t, ufo.Vel.Y)

	assert.Equal(t, UfoCruising, ufo.Ufo.Phase)
	assert.True(t, ufo.Weapon.Automatic)
	assert.Equal(t, e.ship().ID, ufo.TargetID)
}

func TestUfoStateSystem_VeersTowardCenterLine(t *testing.T) {
	e := NewEngine(Config{Seed: 1})
	ufo := e.World().Spawn(&Entity{
		Kind:    KindUfo,
		Pos:     Vec2{X: 0, Y: 150},
		Vel:     Vec2{X: 120},
		Radius:  ufoRadius,
		Visible: true,
		Ufo:     &UfoState{Phase: UfoCruising, TimerLeft: 1},
	})

	e.ufoStateSystem()

	assert.Equal(t, UfoVeering, ufo.Ufo.Phase)
	assert.Equal(t, -100.0, ufo.Vel.Y)
	assert.Greater(t, ufo.Ufo.TimerLeft, 0)
}

func TestUfoStateSystem_VeerEndsLevel(t *testing.T) {
	e := NewEngine(Config{Seed: 1})
	ufo := e.World().Spawn(&Entity{
		Kind:    KindUfo,
		Pos:     Vec2{X: 0, Y: -150},
		Vel:     Vec2{X: 120, Y: 100},
		Radius:  ufoRadius,
		Visible: true,
		Ufo:     &UfoState{Phase: UfoVeering, TimerLeft: 1},
	})

	e.ufoStateSystem()

	assert.Equal(t, UfoCruising, ufo.Ufo.Phase)
	assert.Zero(t, ufo.Vel.Y)
}

func TestUfoStateSystem_WeaponTracksLiveShipOnly(t *testing.T) {
	e := NewEngine(Config{Seed: 1})
	e.Step() // ship goes alive
	ufo := e.World().Spawn(&Entity{
		Kind:    KindUfo,
		Pos:     Vec2{X: 200},
		Radius:  ufoRadius,
		Visible: true,
		Ufo:     &UfoState{Phase: UfoCruising, TimerLeft: 100},
		Weapon:  &Weapon{CooldownEvery: 10, CooldownLeft: 10, Force: 400, Automatic: true},
	})

	e.ufoStateSystem()
	assert.True(t, ufo.Weapon.Triggered)
	assert.Equal(t, e.ship().ID, ufo.TargetID)

	e.killShip(e.ship())
	e.ufoStateSystem()
	assert.False(t, ufo.Weapon.Triggered)
	assert.Zero(t, ufo.TargetID)
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
