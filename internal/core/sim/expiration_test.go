package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpirationSystem_DespawnsWhenTTLRunsOut(t *testing.T) {
	e := NewEngine(Config{Seed: 1})
	p := e.World().Spawn(&Entity{Kind: KindParticle, TTL: 3})

	e.expirationSystem()
	e.expirationSystem()
	assert.NotNil(t, e.World().Get(p.ID))

	e.expirationSystem()
	e.World().Reap()
	assert.Nil(t, e.World().Get(p.ID))
}

func TestExpirationSystem_ZeroTTLNeverExpires(t *testing.T) {
	e := NewEngine(Config{Seed: 1})
	p := e.World().Spawn(&Entity{Kind: KindParticle})

	for i := 0; i < 100; i++ {
		e.expirationSystem()
	}
	e.World().Reap()

	assert.NotNil(t, e.World().Get(p.ID))
}

func TestFlickSystem_TogglesVisibilityOnPeriod(t *testing.T) {
	e := NewEngine(Config{Seed: 1})
	p := e.World().Spawn(&Entity{
		Kind:       KindParticle,
		Visible:    true,
		FlickEvery: 2,
	})
	p.flickLeft = p.FlickEvery

	e.flickSystem()
	assert.True(t, p.Visible)

	e.flickSystem()
	assert.False(t, p.Visible)

	e.flickSystem()
	e.flickSystem()
	assert.True(t, p.Visible)
}

func TestFlickSystem_IgnoresSteadyEntities(t *testing.T) {
	e := NewEngine(Config{Seed: 1})
	p := e.World().Spawn(&Entity{Kind: KindParticle, Visible: true})

	for i := 0; i < 10; i++ {
		e.flickSystem()
	}

	assert.True(t, p.Visible)
}
