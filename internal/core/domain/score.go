package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScoreEntry is a leaderboard row, written once when a game finishes.
type ScoreEntry struct {
	ID         uuid.UUID `json:"id"`
	GameID     uuid.UUID `json:"game_id"`
	Player     string    `json:"player"`
	Score      int       `json:"score"`
	AchievedAt time.Time `json:"achieved_at"`
}
