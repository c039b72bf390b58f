package infrastructure

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PageRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "page_renders_total",
		Help: "Total number of dashboard page renders",
	}, []string{"page", "format"})

	RenderLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "page_render_duration_seconds",
		Help:    "Time spent computing a dashboard page",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"page"})

	RenderCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "render_cache_hits_total",
		Help: "Page renders served from the opt-in render cache",
	}, []string{"page"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by route and status code",
	}, []string{"route", "status"})
)
