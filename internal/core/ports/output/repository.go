package ports

import (
	"context"

	"github.com/google/uuid"

	"asteroid-arena-service/internal/core/domain"
)

type GameRepository interface {
	Create(ctx context.Context, game *domain.Game) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Game, error)
	// Finish records the terminal status, final score and end time.
	Finish(ctx context.Context, game *domain.Game) error
	ListByStatus(ctx context.Context, status domain.GameStatus, limit int) ([]*domain.Game, error)
}

type ScoreRepository interface {
	Create(ctx context.Context, entry *domain.ScoreEntry) error
	ListTop(ctx context.Context, limit int) ([]*domain.ScoreEntry, error)
}
