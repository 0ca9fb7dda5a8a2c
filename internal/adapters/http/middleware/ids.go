package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/kimneyapti/notifier/internal/platform/httpclient"
)

// Request metadata headers.
const (
	headerRequestID     = "X-Request-ID"
	headerCorrelationID = "X-Correlation-ID"
)

// CloudEvents binary-mode headers.
const (
	headerCeID      = "Ce-Id"
	headerCeType    = "Ce-Type"
	headerCeSubject = "Ce-Subject"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// RequestIDs returns middleware that assigns every request a request ID and a
// correlation ID, echoes both as response headers and stores them in the
// context for logging and outbound calls.
//
// The request ID is taken from X-Request-ID or generated. The correlation ID
// is taken from X-Correlation-ID, else the CloudEvent id, else the request
// ID. Redeliveries of one event therefore share a correlation ID.
func RequestIDs() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(headerRequestID)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			corrID := firstNonEmpty(r.Header.Get(headerCorrelationID), r.Header.Get(headerCeID), reqID)

			ctx := WithRequestID(r.Context(), reqID)
			ctx = WithCorrelationID(ctx, corrID)

			w.Header().Set(headerRequestID, reqID)
			w.Header().Set(headerCorrelationID, corrID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithRequestID stores id in ctx, including for outbound calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return httpclient.WithRequestID(context.WithValue(ctx, requestIDKey{}, id), id)
}

// WithCorrelationID stores id in ctx, including for outbound calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return httpclient.WithCorrelationID(context.WithValue(ctx, correlationIDKey{}, id), id)
}

// RequestIDFromContext returns the request ID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// CorrelationIDFromContext returns the correlation ID, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
