package httpclient

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/kimneyapti/notifier/internal/platform/httpclient"

// metadataKey names a context value forwarded as an outbound header.
type metadataKey string

const (
	requestIDHeader     metadataKey = "X-Request-ID"
	correlationIDHeader metadataKey = "X-Correlation-ID"
)

var forwarded = []metadataKey{requestIDHeader, correlationIDHeader}

// WithRequestID makes outbound calls made with ctx carry id as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDHeader, id)
}

// WithCorrelationID makes outbound calls made with ctx carry id as
// X-Correlation-ID. For change events this is the CloudEvent id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDHeader, id)
}

func setMetadataHeaders(ctx context.Context, h http.Header) {
	for _, key := range forwarded {
		if v, _ := ctx.Value(key).(string); v != "" {
			h.Set(string(key), v)
		}
	}
}

// startSpan opens a client span for req and injects its context into the
// outbound headers.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer(tracerName)
	ctx, span := tracer.Start(ctx, c.serviceName+" "+req.Method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.path", req.URL.Path),
			attribute.String("peer.service", c.serviceName),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

func endSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	}
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
