package dto

import (
	"testing"
	"time"

	"asteroid-arena-service/internal/core/domain"
	"asteroid-arena-service/internal/core/sim"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestToGameResponse(t *testing.T) {
	ended := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	game := &domain.Game{
		ID:     uuid.New(),
		Player: "alice",
		Seed:   7,
		Width:  800, Height: 600,
		Status:  domain.GameStatusGameOver,
		Score:   450,
		Lives:   0,
		EndedAt: &ended,
	}

	resp := ToGameResponse(game)

	assert.Equal(t, game.ID.String(), resp.ID)
	assert.Equal(t, "GAME_OVER", resp.Status)
	assert.Equal(t, 450, resp.Score)
	assert.Equal(t, &ended, resp.EndedAt)
}

func TestToSnapshotResponse(t *testing.T) {
	snap := &sim.Snapshot{
		Tick:   120,
		Score:  100,
		Lives:  3,
		Status: sim.StatusRunning,
		Entities: []sim.EntityView{
			{ID: 1, Kind: sim.KindShip, Pos: sim.Vec2{X: 10, Y: -5}, Visible: true},
			{ID: 2, Kind: sim.KindAsteroid, Size: sim.SizeBig, Points: []sim.Vec2{{X: 1}, {Y: 1}}},
		},
	}

	resp := ToSnapshotResponse(snap)

	assert.Equal(t, uint64(120), resp.Tick)
	assert.Equal(t, "RUNNING", resp.Status)
	assert.Len(t, resp.Entities, 2)
	assert.Equal(t, "SHIP", resp.Entities[0].Kind)
	assert.Equal(t, Vec2{X: 10, Y: -5}, resp.Entities[0].Pos)
	assert.Empty(t, resp.Entities[0].Points)
	assert.Equal(t, "BIG", resp.Entities[1].Size)
	assert.Len(t, resp.Entities[1].Points, 2)
}

func TestToSnapshotResponse_Nil(t *testing.T) {
	assert.Nil(t, ToSnapshotResponse(nil))
}
