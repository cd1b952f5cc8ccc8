package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"clinic-support-router/internal/middleware"
	routerHTTP "clinic-support-router/internal/router/delivery/http"
	routerTelegram "clinic-support-router/internal/router/delivery/telegram"
	"clinic-support-router/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw              middleware.Middleware
	routerHandler   routerHTTP.Handler
	telegramHandler routerTelegram.Handler
	backend         string
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int

	RouterHandler routerHTTP.Handler
	// TelegramHandler is optional; nil leaves the webhook unregistered.
	TelegramHandler routerTelegram.Handler
	// Backend names the classification backend, reported by /ready.
	Backend string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              middleware.New(logger, cfg.RateLimitPerMin),
		routerHandler:   cfg.RouterHandler,
		telegramHandler: cfg.TelegramHandler,
		backend:         cfg.Backend,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.routerHandler == nil {
		return errors.New("router handler is required")
	}
	return nil
}
