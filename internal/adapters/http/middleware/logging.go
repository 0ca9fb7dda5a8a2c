package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/kimneyapti/notifier/internal/platform/logging"
)

// Logging returns middleware that derives a request-scoped logger carrying
// the request and correlation IDs plus, for event deliveries, the CloudEvent
// id, type and subject. The logger is stored with logging.WithLogger for the
// handlers. Completion is logged at info, or at warn for 5xx answers.
// Request headers are dumped at debug with credentials masked.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(requestAttrs(r)...)
			ctx = logging.WithLogger(ctx, child)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if child.Enabled(ctx, slog.LevelDebug) {
				child.DebugContext(ctx, "request headers", slog.Any("headers", maskedHeaders(r.Header)))
			}

			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r.WithContext(ctx))

			level := slog.LevelInfo
			if sw.status >= http.StatusInternalServerError {
				level = slog.LevelWarn
			}
			child.Log(ctx, level, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func requestAttrs(r *http.Request) []any {
	attrs := []any{
		slog.String("request_id", RequestIDFromContext(r.Context())),
		slog.String("correlation_id", CorrelationIDFromContext(r.Context())),
	}
	for _, h := range []struct{ header, key string }{
		{headerCeID, "ce_id"},
		{headerCeType, "ce_type"},
		{headerCeSubject, "ce_subject"},
	} {
		if v := r.Header.Get(h.header); v != "" {
			attrs = append(attrs, slog.String(h.key, v))
		}
	}
	return attrs
}

// maskedHeaders flattens headers for logging, masking the names listed in
// logging.SensitiveHeaders.
func maskedHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, vals := range h {
		if logging.SensitiveHeaders[strings.ToLower(name)] {
			out[name] = logging.Redacted
			continue
		}
		out[name] = strings.Join(vals, ",")
	}
	return out
}
