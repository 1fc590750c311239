package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type GameStatus string

const (
	GameStatusRunning   GameStatus = "RUNNING"
	GameStatusGameOver  GameStatus = "GAME_OVER"
	GameStatusAbandoned GameStatus = "ABANDONED"
)

// Game is the persisted record of one simulation session. Seed is
// stored so a finished run can be replayed from its input log.
type Game struct {
	ID        uuid.UUID  `json:"id"`
	Player    string     `json:"player"`
	Seed      int64      `json:"seed"`
	Width     float64    `json:"width"`
	Height    float64    `json:"height"`
	Status    GameStatus `json:"status"`
	Score     int        `json:"score"`
	Lives     int        `json:"lives"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at"`
}

// Finished reports whether the session reached a terminal status.
func (g *Game) Finished() bool {
	return g.Status == GameStatusGameOver || g.Status == GameStatusAbandoned
}

func ValidatePlayer(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidPlayer
	}
	return nil
}
