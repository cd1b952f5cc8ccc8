package http

import (
	"clinic-support-router/internal/router"
	"clinic-support-router/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the public interface for the router HTTP delivery layer.
type Handler interface {
	Route(c *gin.Context)
	Classify(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc router.Router
}

// New creates a new HTTP handler for support routing.
func New(l log.Logger, uc router.Router) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
