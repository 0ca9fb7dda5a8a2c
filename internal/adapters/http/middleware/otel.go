package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/kimneyapti/notifier/internal/platform/telemetry"
)

// CloudEvents binary-mode attributes copied onto the server span.
var cloudEventSpanAttrs = []struct {
	header string
	key    attribute.Key
}{
	{"Ce-Id", "cloudevents.event_id"},
	{"Ce-Type", "cloudevents.event_type"},
	{"Ce-Source", "cloudevents.event_source"},
	{"Ce-Subject", "cloudevents.event_subject"},
}

// OpenTelemetry returns middleware that opens a server span per request,
// continuing any W3C trace context the event source sent, and records server
// metrics labelled with the matched route. metrics may be nil.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	tracer := otel.GetTracerProvider().Tracer("github.com/kimneyapti/notifier/internal/adapters/http")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tracer.Start(ctx, "HTTP "+r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.target", r.URL.Path),
				),
			)
			defer span.End()

			for _, a := range cloudEventSpanAttrs {
				if v := r.Header.Get(a.header); v != "" {
					span.SetAttributes(a.key.String(v))
				}
			}

			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r.WithContext(ctx))

			route := routePattern(r)
			status := sw.status
			span.SetName("HTTP " + r.Method + " " + route)
			span.SetAttributes(
				attribute.String("http.route", route),
				attribute.Int("http.status_code", status),
			)
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			metrics.RecordServerRequest(ctx, r.Method, route, status, statusClass(status), time.Since(start))
		})
	}
}

// routePattern returns the chi route that served r, or "unmatched" so raw
// paths never become metric labels.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

func statusClass(status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return "server_error"
	case status >= http.StatusBadRequest:
		return "client_error"
	default:
		return "success"
	}
}
