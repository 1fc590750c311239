package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorld_SpawnAssignsSequentialIDs(t *testing.T) {
	w := NewWorld()

	a := w.Spawn(&Entity{Kind: KindAsteroid})
	b := w.Spawn(&Entity{Kind: KindBullet})

	assert.Equal(t, EntityID(1), a.ID)
	assert.Equal(t, EntityID(2), b.ID)
	assert.Equal(t, 2, len(w.Entities()))
}

func TestWorld_IterationFollowsSpawnOrder(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 5; i++ {
		w.Spawn(&Entity{Kind: KindParticle})
	}

	var ids []EntityID
	for _, ent := range w.Entities() {
		ids = append(ids, ent.ID)
	}
	assert.Equal(t, []EntityID{1, 2, 3, 4, 5}, ids)
}

func TestWorld_DespawnIsDeferredUntilReap(t *testing.T) {
	w := NewWorld()
	a := w.Spawn(&Entity{Kind: KindAsteroid})
	b := w.Spawn(&Entity{Kind: KindAsteroid})

	w.Despawn(a.ID)

	// Marked entities disappear from lookups immediately.
	assert.Nil(t, w.Get(a.ID))
	assert.Len(t, w.Entities(), 1)

	w.Reap()

	assert.Len(t, w.Entities(), 1)
	assert.Equal(t, b.ID, w.Entities()[0].ID)
}

func TestWorld_DespawnUnknownIDIsNoop(t *testing.T) {
	w := NewWorld()
	w.Spawn(&Entity{Kind: KindShip})

	w.Despawn(999)
	w.Reap()

	assert.Len(t, w.Entities(), 1)
}

func TestWorld_OfKindFilters(t *testing.T) {
	w := NewWorld()
	w.Spawn(&Entity{Kind: KindAsteroid})
	w.Spawn(&Entity{Kind: KindBullet})
	w.Spawn(&Entity{Kind: KindAsteroid})

	assert.Len(t, w.OfKind(KindAsteroid), 2)
	assert.Len(t, w.OfKind(KindBullet), 1)
	assert.Empty(t, w.OfKind(KindUfo))
	assert.Equal(t, 2, w.Count(KindAsteroid))
}
