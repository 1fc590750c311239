package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"asteroid-arena-service/internal/core/domain"
	"asteroid-arena-service/internal/testutil"
)

func TestLeaderboardService_Top(t *testing.T) {
	scores := new(testutil.MockScoreRepo)
	svc := NewLeaderboardService(scores)

	entries := []*domain.ScoreEntry{
		{ID: uuid.New(), Player: "alice", Score: 500},
		{ID: uuid.New(), Player: "bob", Score: 300},
	}
	scores.On("ListTop", mock.Anything, 2).Return(entries, nil)

	got, err := svc.Top(context.Background(), 2)

	assert.NoError(t, err)
	assert.Equal(t, entries, got)
	scores.AssertExpectations(t)
}

func TestLeaderboardService_TopDefaultLimit(t *testing.T) {
	scores := new(testutil.MockScoreRepo)
	svc := NewLeaderboardService(scores)
	scores.On("ListTop", mock.Anything, defaultLeaderboardLimit).
		Return([]*domain.ScoreEntry{}, nil)

	_, err := svc.Top(context.Background(), 0)

	assert.NoError(t, err)
	scores.AssertExpectations(t)
}

func TestLeaderboardService_TopLimitBounds(t *testing.T) {
	scores := new(testutil.MockScoreRepo)
	svc := NewLeaderboardService(scores)

	_, err := svc.Top(context.Background(), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidLimit)

	_, err = svc.Top(context.Background(), maxLeaderboardLimit+1)
	assert.ErrorIs(t, err, domain.ErrInvalidLimit)

	scores.AssertNotCalled(t, "ListTop")
}
