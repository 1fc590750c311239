package services

import (
	"context"

	"asteroid-arena-service/internal/core/domain"
	ports "asteroid-arena-service/internal/core/ports/output"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

type LeaderboardService struct {
	scores ports.ScoreRepository
}

func NewLeaderboardService(scores ports.ScoreRepository) *LeaderboardService {
	return &LeaderboardService{scores: scores}
}

// Top returns the highest scores. Limit zero means the default page
// size; out-of-range limits are rejected.
func (s *LeaderboardService) Top(ctx context.Context, limit int) ([]*domain.ScoreEntry, error) {
	if limit == 0 {
		limit = defaultLeaderboardLimit
	}
	if limit < 1 || limit > maxLeaderboardLimit {
		return nil, domain.ErrInvalidLimit
	}
	return s.scores.ListTop(ctx, limit)
}
