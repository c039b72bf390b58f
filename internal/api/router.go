// Package api assembles the dashboard's HTTP server.
package api

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"quantdec/internal/api/handlers"
	"quantdec/internal/api/middleware"
	"quantdec/internal/api/models"
	"quantdec/internal/config"
	"quantdec/internal/data"
	"quantdec/internal/pages"
	"quantdec/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter wires middleware, templates and routes. cache may be nil.
func NewRouter(cfg *config.Config, logger *zap.Logger, pr *pages.Router, cache *data.ResponseCache[*pages.View]) (*gin.Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	pageHandler := handlers.NewPageHandler(pr, cache, logger)

	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/", pageHandler.Home)
	router.GET("/pages/:slug", pageHandler.RenderHTML)

	// API routes
	api := router.Group("/api/v1")
	{
		api.GET("/pages", pageHandler.ListPages)
		api.GET("/pages/:slug", pageHandler.GetPage)
		api.GET("/pages/:slug/csv", pageHandler.ExportCSV)
	}

	staticDir := cfg.Server.StaticDir
	if info, err := os.Stat(staticDir); staticDir != "" && err == nil && info.IsDir() {
		router.Static("/static", staticDir)
		logger.Info("serving static files", zap.String("dir", staticDir))
	}

	router.NoRoute(func(c *gin.Context) {
		code, message := models.CodeNotFound, "Not found"
		if !strings.HasPrefix(c.Request.URL.Path, "/api") {
			code, message = models.CodePageNotFound, fmt.Sprintf("no page at %s", c.Request.URL.Path)
		}
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{Code: code, Message: message},
		})
	})

	return router, nil
}
