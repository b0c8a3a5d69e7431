// Package metrics holds the process-wide prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for AIRequests
const (
	AIOutcomeSuccess       = "success"
	AIOutcomeError         = "error"
	AIOutcomeNotConfigured = "not_configured"
)

// Result labels for StatsCacheLookups
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "squad_http_requests_total",
		Help: "Total number of HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "squad_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	AIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "squad_ai_requests_total",
		Help: "Total number of AI coach requests by outcome",
	}, []string{"outcome"})

	StatsCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "squad_stats_cache_lookups_total",
		Help: "Player summary cache lookups by result",
	}, []string{"result"})
)

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
