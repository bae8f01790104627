// Package metrics declares the prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	AuditEntriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "audit_entries_total",
		Help: "Audit entries written by module and action.",
	}, []string{"module", "action"})

	CacheInvalidationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cache_invalidations_total",
		Help: "Cache keys deleted after committed mutations, by key prefix.",
	}, []string{"key_prefix"})

	PromotionsExpiredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "promotions_expired_total",
		Help: "Coupons and deals deactivated by the expiry job.",
	}, []string{"kind"})
)

// Handler serves the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}

// KeyPrefix returns the part of a cache key before the first ':'
func KeyPrefix(key string) string {
	for i := 0; i < len(key); i++ {
		if key[i] == ':' {
			return key[:i]
		}
	}
	return key
}
