// Package logger configures the process-wide zerolog logger and hands out
// request-scoped loggers tagged with request_id and operation.
package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type requestIDKey struct{}

// Setup installs the global logger. Development gets the console writer.
func Setup(level, environment string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	var out io.Writer = os.Stderr
	if environment == "development" {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	l := zerolog.New(out).With().Timestamp().Logger()
	log.Logger = l
	return l
}

// WithRequestID stores the request ID on ctx.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID extracts the request ID from ctx, or "".
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// For returns a logger carrying the request ID (when present) and operation name.
func For(ctx context.Context, operation string) *zerolog.Logger {
	c := log.Logger.With().Str("operation", operation)
	if rid := RequestID(ctx); rid != "" {
		c = c.Str("request_id", rid)
	}
	l := c.Logger()
	return &l
}
