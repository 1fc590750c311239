package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"asteroid-arena-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLeaderboard(t *testing.T) {
	_, scoreRepo, r := setupRouter()

	entries := []*domain.ScoreEntry{
		{ID: uuid.New(), GameID: uuid.New(), Player: "alice", Score: 500, AchievedAt: time.Now()},
		{ID: uuid.New(), GameID: uuid.New(), Player: "bob", Score: 300, AchievedAt: time.Now()},
	}
	scoreRepo.On("ListTop", mock.Anything, 2).Return(entries, nil)

	req, _ := http.NewRequest("GET", "/api/v1/arena/leaderboard?limit=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, float64(2), resp["total"])
	items := resp["items"].([]interface{})
	first := items[0].(map[string]interface{})
	assert.Equal(t, "alice", first["player"])
}

func TestLeaderboard_DefaultLimit(t *testing.T) {
	_, scoreRepo, r := setupRouter()
	scoreRepo.On("ListTop", mock.Anything, 10).Return([]*domain.ScoreEntry{}, nil)

	req, _ := http.NewRequest("GET", "/api/v1/arena/leaderboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	scoreRepo.AssertExpectations(t)
}

func TestLeaderboard_InvalidLimit(t *testing.T) {
	_, _, r := setupRouter()

	for _, q := range []string{"limit=abc", "limit=101", "limit=-5"} {
		req, _ := http.NewRequest("GET", "/api/v1/arena/leaderboard?"+q, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "query %s", q)
	}
}
