package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"asteroid-arena-service/internal/core/domain"
)

// MockGameRepo is a mock of GameRepository.
type MockGameRepo struct {
	mock.Mock
}

func (m *MockGameRepo) Create(ctx context.Context, game *domain.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *MockGameRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Game), args.Error(1)
}

func (m *MockGameRepo) Finish(ctx context.Context, game *domain.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *MockGameRepo) ListByStatus(ctx context.Context, status domain.GameStatus, limit int) ([]*domain.Game, error) {
	args := m.Called(ctx, status, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Game), args.Error(1)
}

// MockScoreRepo is a mock of ScoreRepository.
type MockScoreRepo struct {
	mock.Mock
}

func (m *MockScoreRepo) Create(ctx context.Context, entry *domain.ScoreEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockScoreRepo) ListTop(ctx context.Context, limit int) ([]*domain.ScoreEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ScoreEntry), args.Error(1)
}
