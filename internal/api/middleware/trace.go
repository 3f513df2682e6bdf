// Package middleware provides the HTTP middleware the router composes
// around the API handlers.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/salesacademy/academy-api/internal/api/shared"
	"github.com/salesacademy/academy-api/internal/platform/logger"
)

// NewTraceMiddleware returns middleware that stamps every request with a
// trace ID and attaches a trace-scoped logger to the context, so every log
// line produced while serving the request can be correlated.
func NewTraceMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceLogger := log.With(slog.String("trace_id", shared.GetTraceID(ctx)))
			ctx = logger.WithLogger(ctx, traceLogger)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
