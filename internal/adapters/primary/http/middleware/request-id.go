package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextRequestID is the gin context key the logging middleware
	// reads the request id from.
	ContextRequestID = "request_id"

	headerRequestID = "X-Request-ID"
)

// RequestID propagates an inbound X-Request-ID, minting a fresh one
// when the caller sent none, and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(ContextRequestID, id)
		c.Header(headerRequestID, id)

		c.Next()
	}
}
