package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brightlane-studio/portfolio-backend/internal/metrics"
)

// MetricsMiddleware records request count and latency per matched route.
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
