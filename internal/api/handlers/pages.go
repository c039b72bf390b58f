package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"quantdec/internal/api/middleware"
	"quantdec/internal/api/models"
	"quantdec/internal/data"
	"quantdec/internal/infrastructure"
	"quantdec/internal/pages"
	"quantdec/internal/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PageHandler serves the dashboard pages as HTML, JSON and CSV.
type PageHandler struct {
	router *pages.Router
	cache  *data.ResponseCache[*pages.View]
	logger *zap.Logger
}

// NewPageHandler creates a page handler. cache may be nil, in which case
// every request is rendered from scratch.
func NewPageHandler(router *pages.Router, cache *data.ResponseCache[*pages.View], logger *zap.Logger) *PageHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageHandler{router: router, cache: cache, logger: logger}
}

// ListPages handles GET /api/v1/pages
func (h *PageHandler) ListPages(c *gin.Context) {
	c.JSON(http.StatusOK, models.PageListResponse{Pages: h.router.Pages()})
}

// GetPage handles GET /api/v1/pages/:slug
func (h *PageHandler) GetPage(c *gin.Context) {
	v, ok := h.render(c, c.Param("slug"), "json")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.NewPageResponse(v))
}

// ExportCSV handles GET /api/v1/pages/:slug/csv
func (h *PageHandler) ExportCSV(c *gin.Context) {
	v, ok := h.render(c, c.Param("slug"), "csv")
	if !ok {
		return
	}
	if !v.HasData() {
		respondError(c, http.StatusBadRequest, models.CodeInvalidRequest,
			fmt.Sprintf("page %q has no series to export", v.Page.Slug), nil)
		return
	}

	var buf bytes.Buffer
	if err := v.WriteCSV(&buf); err != nil {
		h.logger.Error("csv export failed", zap.String("page", v.Page.Slug), zap.Error(err))
		respondError(c, http.StatusInternalServerError, models.CodeRenderError, err.Error(), nil)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", v.Page.Slug+".csv"))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Home handles GET /
func (h *PageHandler) Home(c *gin.Context) {
	h.renderHTML(c, pages.SlugHome)
}

// RenderHTML handles GET /pages/:slug
func (h *PageHandler) RenderHTML(c *gin.Context) {
	h.renderHTML(c, c.Param("slug"))
}

func (h *PageHandler) renderHTML(c *gin.Context, slug string) {
	v, ok := h.render(c, slug, "html")
	if !ok {
		return
	}
	c.HTML(http.StatusOK, web.PageTemplate, web.Data{
		Site:   h.router.Config().Page,
		Pages:  h.router.Pages(),
		View:   v,
		Active: v.Page.Slug,
	})
}

// render resolves the page, binds its controls and renders it, consulting the
// cache when one is configured. On failure the error response has been
// written and ok is false.
func (h *PageHandler) render(c *gin.Context, slug, format string) (*pages.View, bool) {
	page, found := h.router.Lookup(slug)
	if !found {
		respondError(c, http.StatusNotFound, models.CodePageNotFound,
			fmt.Sprintf("page %q not found", slug),
			map[string]interface{}{"slug": slug})
		return nil, false
	}

	var q models.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, err.Error(), nil)
		return nil, false
	}
	params := h.router.Clamp(q.Apply(h.router.DefaultParams()))

	key := data.GenerateCacheKey(page.Slug, params)
	if v, hit := h.cache.Get(key); hit {
		infrastructure.RenderCacheHits.WithLabelValues(page.Slug).Inc()
		infrastructure.PageRenders.WithLabelValues(page.Slug, format).Inc()
		return v, true
	}

	start := time.Now()
	v, err := h.router.Render(page.Slug, params)
	infrastructure.RenderLatency.WithLabelValues(page.Slug).Observe(time.Since(start).Seconds())
	if err != nil {
		h.logger.Error("render failed",
			zap.String("page", page.Slug),
			zap.String("request_id", middleware.RequestIDFrom(c)),
			zap.Error(err),
		)
		respondError(c, http.StatusInternalServerError, models.CodeRenderError, err.Error(), nil)
		return nil, false
	}
	infrastructure.PageRenders.WithLabelValues(page.Slug, format).Inc()
	h.cache.Set(key, v)
	return v, true
}

func respondError(c *gin.Context, status int, code, message string, details map[string]interface{}) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}
