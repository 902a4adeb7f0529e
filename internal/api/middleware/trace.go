package middleware

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/microservices-demo/catalog-api/internal/api/shared"
	"github.com/microservices-demo/catalog-api/internal/platform/logger"
)

// NewTraceMiddleware returns middleware that adds a trace ID to the request
// context and echoes it in the X-Trace-ID response header. A trace ID sent by
// the client in the same header is reused when it parses as a UUID; any other
// value is replaced by a fresh one. The request context also receives
// a logger pre-tagged with the trace ID.
//
// This middleware should be applied early in the middleware chain so that
// every later handler has access to the trace ID.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if incoming, err := uuid.Parse(r.Header.Get(shared.TraceIDHeader)); err == nil {
				ctx = shared.WithTraceID(ctx, incoming.String())
			} else {
				ctx = shared.SetTraceID(ctx)
			}
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			w.Header().Set(shared.TraceIDHeader, traceID)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
