package httpserver

import (
	"context"

	routerHTTP "clinic-support-router/internal/router/delivery/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	environmentProduction = "production"
	telegramWebhookPath   = "/webhook/telegram"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery(), srv.mw.RequestID())

	ctx := context.Background()
	if srv.environment == environmentProduction {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.gin.Use(gin.Logger())
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() {
	api := srv.gin.Group("/api/v1")
	routerHTTP.RegisterRoutes(api, srv.routerHandler, srv.mw)
	srv.l.Infof(context.Background(), "Router routes registered at POST /api/v1/route and /api/v1/classify")

	// Telegram delivers from a shared pool of addresses, so no per-IP limit here.
	if srv.telegramHandler != nil {
		srv.gin.POST(telegramWebhookPath, srv.telegramHandler.HandleWebhook)
		srv.l.Infof(context.Background(), "Telegram webhook registered at POST %s", telegramWebhookPath)
	}
}
