package handlers

import (
	"errors"
	"net/http"

	"asteroid-arena-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrGameFinished):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidPlayer),
		errors.Is(err, domain.ErrInvalidFieldSize),
		errors.Is(err, domain.ErrInvalidTickCount),
		errors.Is(err, domain.ErrInvalidTurn),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidLimit):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Capacity errors
	case errors.Is(err, domain.ErrTooManySessions):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
