package bootstrap

import (
	"fmt"
	"log/slog"
	"net/http"

	appmiddleware "autonews/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewHTTPServer creates and configures the Echo HTTP server.
func NewHTTPServer(deps *Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
	e.Server.WriteTimeout = deps.Config.Server.WriteTimeout

	// Custom error handler for consistent error responses
	e.HTTPErrorHandler = appmiddleware.CustomHTTPErrorHandler(deps.Logger)

	e.Use(appmiddleware.RequestIDMiddleware())
	e.Use(appmiddleware.LoggingMiddleware(deps.Logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	registerRoutes(e, deps)

	return e
}

func registerRoutes(e *echo.Echo, deps *Dependencies) {
	api := e.Group("/api/v1")

	// Public browsing API
	api.GET("/articles", deps.ArticleHandler.List)
	api.GET("/articles/:slug", deps.ArticleHandler.Get)
	api.GET("/categories", deps.ArticleHandler.Categories)
	api.GET("/ads/:slot", deps.MonetizationHandler.Placements)
	api.GET("/affiliate/click/:id", deps.MonetizationHandler.Click)
	api.GET("/health", deps.HealthHandler.Check)

	// Admin API, bearer token required
	admin := api.Group("/admin")
	admin.Use(deps.AuthMiddleware.RequireAdmin())

	admin.POST("/ingest/fetch", deps.IngestHandler.FetchAll)
	admin.POST("/ingest/sources/:id/fetch", deps.IngestHandler.FetchSource)
	admin.POST("/queue/process", deps.QueueHandler.Process)
	admin.GET("/queue", deps.QueueHandler.List)
	admin.GET("/queue/stats", deps.QueueHandler.Stats)
	admin.POST("/rewrite/process", deps.RewriteHandler.Process)
	admin.POST("/rewrite", deps.RewriteHandler.Rewrite)
	admin.POST("/upload", deps.UploadHandler.Upload)
	admin.POST("/articles/:id/publish", deps.ArticleHandler.Publish)
	admin.GET("/revenue", deps.MonetizationHandler.Revenue)
}

// StartHTTPServer starts the HTTP server in a goroutine.
func StartHTTPServer(e *echo.Echo, deps *Dependencies, log *slog.Logger) {
	go func() {
		addr := fmt.Sprintf(":%d", deps.Config.Server.Port)

		log.Info("starting HTTP server", "addr", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()
}
