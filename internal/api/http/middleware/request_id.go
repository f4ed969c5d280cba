package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brightlane-studio/portfolio-backend/internal/platform/logger"
)

// RequestIDMiddleware ensures every request has a stable request ID.
// An incoming X-Request-Id is reused, otherwise one is generated. The ID is
// stored on the gin and request contexts, echoed in the response header and
// attached to the access log line.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := strings.TrimSpace(c.GetHeader("X-Request-Id"))
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Set("request_id", rid)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), rid))
		c.Writer.Header().Set("X-Request-Id", rid)

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		ev := logger.For(c.Request.Context(), "http.request").Info()
		if status >= 500 {
			ev = logger.For(c.Request.Context(), "http.request").Error()
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request handled")
	}
}
