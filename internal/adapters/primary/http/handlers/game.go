package handlers

import (
	"net/http"
	"strconv"

	"asteroid-arena-service/internal/adapters/primary/http/dto"
	"asteroid-arena-service/internal/core/domain"
	"asteroid-arena-service/internal/core/sim"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) CreateGame(c *gin.Context) {
	var req dto.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, snapshot, err := h.gameSvc.Create(c.Request.Context(), req.Player, req.Seed, req.Width, req.Height)
	if err != nil {
		log.WithError(err).Error("create game failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.GameStateResponse{
		Game:     dto.ToGameResponse(game),
		Snapshot: dto.ToSnapshotResponse(snapshot),
	})
}

// ListGames returns active sessions by default; a status query filter
// switches to the persisted history of finished runs.
func (h *Handler) ListGames(c *gin.Context) {
	var games []*domain.Game
	if status := c.Query("status"); status != "" {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		games, err = h.gameSvc.ListFinished(c.Request.Context(), domain.GameStatus(status), limit)
		if err != nil {
			mapDomainError(c, err)
			return
		}
	} else {
		games = h.gameSvc.List(c.Request.Context())
	}

	items := make([]dto.GameResponse, 0, len(games))
	for _, g := range games {
		items = append(items, dto.ToGameResponse(g))
	}

	c.JSON(http.StatusOK, dto.ListGamesResponse{
		Items: items,
		Total: len(items),
	})
}

func (h *Handler) GetGame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return
	}

	game, snapshot, err := h.gameSvc.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GameStateResponse{
		Game:     dto.ToGameResponse(game),
		Snapshot: dto.ToSnapshotResponse(snapshot),
	})
}

func (h *Handler) SetInput(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return
	}

	var req dto.InputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := sim.Input{
		Turn:   req.Turn,
		Thrust: req.Thrust,
		Fire:   req.Fire,
	}
	if err := h.gameSvc.SetInput(c.Request.Context(), id, input); err != nil {
		mapDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) AdvanceGame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return
	}

	var req dto.AdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, snapshot, err := h.gameSvc.Advance(c.Request.Context(), id, req.Ticks)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GameStateResponse{
		Game:     dto.ToGameResponse(game),
		Snapshot: dto.ToSnapshotResponse(snapshot),
	})
}

func (h *Handler) EndGame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return
	}

	game, err := h.gameSvc.End(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGameResponse(game))
}
