package handlers

import (
	"net/http"
	"strconv"

	"asteroid-arena-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) Leaderboard(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	entries, err := h.leaderboardSvc.Top(c.Request.Context(), limit)
	if err != nil {
		log.WithError(err).Error("list leaderboard failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ScoreResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.ToScoreResponse(e))
	}

	c.JSON(http.StatusOK, dto.LeaderboardResponse{
		Items: items,
		Total: len(items),
	})
}
