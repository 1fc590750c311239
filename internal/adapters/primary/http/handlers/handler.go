package handlers

import (
	"asteroid-arena-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	gameSvc        *services.GameService
	leaderboardSvc *services.LeaderboardService
}

func New(gameSvc *services.GameService, leaderboardSvc *services.LeaderboardService) *Handler {
	return &Handler{
		gameSvc:        gameSvc,
		leaderboardSvc: leaderboardSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Game Sessions
	r.POST("/games", h.CreateGame)
	r.GET("/games", h.ListGames)
	r.GET("/games/:id", h.GetGame)
	r.POST("/games/:id/input", h.SetInput)
	r.POST("/games/:id/advance", h.AdvanceGame)
	r.DELETE("/games/:id", h.EndGame)

	// Leaderboard
	r.GET("/leaderboard", h.Leaderboard)
}
