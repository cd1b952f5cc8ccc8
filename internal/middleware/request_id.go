package middleware

import (
	"clinic-support-router/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID reuses the caller's X-Request-ID or generates one, echoes it in
// the response and stores it in the request context for the logger.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
