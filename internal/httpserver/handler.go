package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/awesomefanda/adjnt/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	if srv.wahaHandler != nil {
		srv.gin.POST("/webhook/waha", srv.wahaHandler.HandleWebhook)
		srv.l.Infof(ctx, "WAHA webhook route registered at POST /webhook/waha")
	} else {
		srv.l.Infof(ctx, "WAHA handler not configured, skipping webhook route")
	}
}
