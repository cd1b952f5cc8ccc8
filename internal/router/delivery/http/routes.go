package http

import (
	"clinic-support-router/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Both routes are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/route", mw.RateLimit(), h.Route)
	rg.POST("/classify", mw.RateLimit(), h.Classify)
}
