package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"shop-admin.backend/pkg/metrics"
)

// MetricsMiddleware records request counts and latency per matched route.
// Unmatched paths are grouped under "unmatched" to bound label cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
