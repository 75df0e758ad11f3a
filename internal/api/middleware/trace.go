package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
)

// NewTraceMiddleware assigns each request a trace ID, echoes it in the
// X-Trace-ID response header and stores a logger tagged with it in the
// request context. Apply it before any handler that logs.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
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
