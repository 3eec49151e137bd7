package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dbt-guide/internal/middleware"
	"dbt-guide/internal/model"
	"dbt-guide/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.middleware)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.CustomRecovery(srv.recoverPanic))
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.Language())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

// recoverPanic answers a panicking request with the standard 500 body.
func (srv HTTPServer) recoverPanic(c *gin.Context, rec any) {
	srv.l.Errorf(c.Request.Context(), "httpserver.recoverPanic: %s %s: %v", c.Request.Method, c.Request.URL.Path, rec)
	response.InternalError(c, fmt.Errorf("panic: %v", rec))
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.NoRoute(response.NotFound)

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
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	if err := srv.setupChatDomain(ctx, api, mw); err != nil {
		return err
	}
	if err := srv.setupGuideDomain(ctx, api); err != nil {
		return err
	}

	return nil
}
