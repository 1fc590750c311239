package dto

import (
	"time"

	"asteroid-arena-service/internal/core/domain"
	"asteroid-arena-service/internal/core/sim"
)

type CreateGameRequest struct {
	Player string  `json:"player" binding:"required"`
	Seed   *int64  `json:"seed"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type InputRequest struct {
	Turn   int  `json:"turn"`
	Thrust bool `json:"thrust"`
	Fire   bool `json:"fire"`
}

type AdvanceRequest struct {
	Ticks int `json:"ticks" binding:"required"`
}

type GameResponse struct {
	ID        string     `json:"id"`
	Player    string     `json:"player"`
	Seed      int64      `json:"seed"`
	Width     float64    `json:"width"`
	Height    float64    `json:"height"`
	Status    string     `json:"status"`
	Score     int        `json:"score"`
	Lives     int        `json:"lives"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type EntityResponse struct {
	ID      uint64  `json:"id"`
	Kind    string  `json:"kind"`
	Pos     Vec2    `json:"pos"`
	Rot     float64 `json:"rot"`
	Radius  float64 `json:"radius"`
	Visible bool    `json:"visible"`
	Size    string  `json:"size,omitempty"`
	Points  []Vec2  `json:"points,omitempty"`
}

type SnapshotResponse struct {
	Tick     uint64           `json:"tick"`
	Score    int              `json:"score"`
	Lives    int              `json:"lives"`
	Status   string           `json:"status"`
	Entities []EntityResponse `json:"entities"`
}

// GameStateResponse pairs the session record with a simulation
// snapshot. Snapshot is omitted for finished sessions, whose engines
// are gone.
type GameStateResponse struct {
	Game     GameResponse      `json:"game"`
	Snapshot *SnapshotResponse `json:"snapshot,omitempty"`
}

type ListGamesResponse struct {
	Items []GameResponse `json:"items"`
	Total int            `json:"total"`
}

type ScoreResponse struct {
	ID         string    `json:"id"`
	GameID     string    `json:"game_id"`
	Player     string    `json:"player"`
	Score      int       `json:"score"`
	AchievedAt time.Time `json:"achieved_at"`
}

type LeaderboardResponse struct {
	Items []ScoreResponse `json:"items"`
	Total int             `json:"total"`
}

func ToGameResponse(g *domain.Game) GameResponse {
	return GameResponse{
		ID:        g.ID.String(),
		Player:    g.Player,
		Seed:      g.Seed,
		Width:     g.Width,
		Height:    g.Height,
		Status:    string(g.Status),
		Score:     g.Score,
		Lives:     g.Lives,
		StartedAt: g.StartedAt,
		EndedAt:   g.EndedAt,
	}
}

func ToSnapshotResponse(s *sim.Snapshot) *SnapshotResponse {
	if s == nil {
		return nil
	}
	entities := make([]EntityResponse, 0, len(s.Entities))
	for _, e := range s.Entities {
		entities = append(entities, toEntityResponse(e))
	}
	return &SnapshotResponse{
		Tick:     s.Tick,
		Score:    s.Score,
		Lives:    s.Lives,
		Status:   string(s.Status),
		Entities: entities,
	}
}

func toEntityResponse(e sim.EntityView) EntityResponse {
	resp := EntityResponse{
		ID:      uint64(e.ID),
		Kind:    string(e.Kind),
		Pos:     Vec2{X: e.Pos.X, Y: e.Pos.Y},
		Rot:     e.Rot,
		Radius:  e.Radius,
		Visible: e.Visible,
		Size:    string(e.Size),
	}
	if len(e.Points) > 0 {
		points := make([]Vec2, 0, len(e.Points))
		for _, p := range e.Points {
			points = append(points, Vec2{X: p.X, Y: p.Y})
		}
		resp.Points = points
	}
	return resp
}

func ToScoreResponse(e *domain.ScoreEntry) ScoreResponse {
	return ScoreResponse{
		ID:         e.ID.String(),
		GameID:     e.GameID.String(),
		Player:     e.Player,
		Score:      e.Score,
		AchievedAt: e.AchievedAt,
	}
}
