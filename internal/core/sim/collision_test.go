package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func spawnRock(e *Engine, pos Vec2, size SizeClass, radius float64) *Entity {
	return e.World().Spawn(&Entity{
		Kind:       KindAsteroid,
		Pos:        pos,
		Radius:     radius,
		Size:       size,
		Collidable: true,
		Visible:    true,
	})
}

func spawnShot(e *Engine, pos Vec2) *Entity {
	return e.World().Spawn(&Entity{
		Kind:       KindBullet,
		Pos:        pos,
		Radius:     bulletRadius,
		Collidable: true,
		Visible:    true,
	})
}

func TestIntersects(t *testing.T) {
	a := &Entity{Pos: Vec2{X: 0}, Radius: 5}
	b := &Entity{Pos: Vec2{X: 9}, Radius: 5}
	assert.True(t, intersects(a, b))

	// Exact touch does not count.
	b.Pos.X = 10
	assert.False(t, intersects(a, b))
}

func TestCollisionSystem_ReportsRegisteredPairs(t *testing.T) {
	e := NewEngine(Config{Seed: 1})
	rock := spawnRock(e, Vec2{X: 100}, SizeSmall, 15)
	shot := spawnShot(e, Vec2{X: 105})

	hits := e.collisionSystem()

	assert.Len(t, hits, 1)
	assert.Equal(t, shot.ID, hits[0].attacker.ID)
	assert.Equal(t, rock.ID, hits[0].victim.ID)
}

func TestCollisionSystem_IgnoresNonCollidable(t *testing.T) {
	e := NewEngine(Config{Seed: 1})
	rock := spawnRock(e, Vec2{X: 100}, SizeSmall, 15)
	rock.Collidable = false
	spawnShot(e, Vec2{X: 105})

	assert.Empty(t, e.collisionSystem())
}

func TestCollisionSystem_AsteroidsPassThroughEachOther(t *testing.T) {
	e := NewEngine(Config{Seed: 1})
	spawnRock(e, Vec2{X: 100}, SizeBig, 50)
	spawnRock(e, Vec2{X: 110}, SizeBig, 50)

	assert.Empty(t, e.collisionSystem())
}

func TestResolveHits_BulletKillsAsteroidAndScores(t *testing.T) {
	e := NewEngine(Config{Seed: 1})
	rock := spawnRock(e, Vec2{X: 100}, SizeSmall, 15)
	shot := spawnShot(e, Vec2{X: 100})

	e.resolveHits(e.collisionSystem())
	e.World().Reap()

	assert.Nil(t, e.World().Get(rock.ID))
	assert.Nil(t, e.World().Get(shot.ID))
	assert.Equal(t, scoreValue[SizeSmall], e.Score())
}

func TestResolveHits_EntityDiesAtMostOncePerTick(t *testing.T) {
	e := NewEngine(Config{Seed: 1})
	spawnRock(e, Vec2{X: 100}, SizeSmall, 15)
	spawnRock(e, Vec2{X: 100}, SizeSmall, 15)
	spawnShot(e, Vec2{X: 100})

	hits := e.collisionSystem()
	assert.Len(t, hits, 2)

	e.resolveHits(hits)
	e.World().Reap()

	// One bullet spends itself on the first rock; the second survives.
	assert.Equal(t, 1, e.World().Count(KindAsteroid))
	assert.Equal(t, scoreValue[SizeSmall], e.Score())
}

func TestResolveHits_UfoScoresOnlyOnBulletKills(t *testing.T) {
	e := NewEngine(Config{Seed: 1})
	e.World().Spawn(&Entity{
		Kind:       KindUfo,
		Pos:        Vec2{X: 100},
		Radius:     ufoRadius,
		Collidable: true,
		Visible:    true,
	})
	rock := spawnRock(e, Vec2{X: 100}, SizeSmall, 15)

	e.resolveHits(e.collisionSystem())
	e.World().Reap()

	assert.Zero(t, e.World().Count(KindUfo))
	// The asteroid survives a ufo ramming, and no points land.
	assert.NotNil(t, e.World().Get(rock.ID))
	assert.Zero(t, e.Score())
}

func TestResolveHits_BulletKillsUfo(t *testing.T) {
	e := NewEngine(Config{Seed: 1})
	e.World().Spawn(&Entity{
		Kind:       KindUfo,
		Pos:        Vec2{X: 100},
		Radius:     ufoRadius,
		Collidable: true,
		Visible:    true,
	})
	spawnShot(e, Vec2{X: 100})

	e.resolveHits(e.collisionSystem())
	e.World().Reap()

	assert.Zero(t, e.World().Count(KindUfo))
	assert.Zero(t, e.World().Count(KindBullet))
	assert.Equal(t, scoreUfo, e.Score())
}
