package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Every Record method is a no-op on a nil *Metrics.

// RecordServerRequest records one handled inbound request. route is the
// matched route pattern, never the raw path.
func (m *Metrics) RecordServerRequest(ctx context.Context, method, route string, status int, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		AttrHTTPMethod.String(method),
		AttrHTTPRoute.String(route),
		AttrHTTPStatus.Int(status),
		AttrResult.String(result),
	)
	m.ServerRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.ServerRequestTotal.Add(ctx, 1, attrs)
}

// RecordClientRequest records one outbound call to peer.
func (m *Metrics) RecordClientRequest(ctx context.Context, peer, method string, status int, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		AttrHTTPMethod.String(method),
		AttrHTTPStatus.Int(status),
		AttrPeerService.String(peer),
		AttrResult.String(result),
	)
	m.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.ClientRequestTotal.Add(ctx, 1, attrs)
}

// RecordDelivery records the per-token outcome of one multicast.
func (m *Metrics) RecordDelivery(ctx context.Context, sent, failed int) {
	if m == nil {
		return
	}
	if sent > 0 {
		m.NotificationsSent.Add(ctx, int64(sent))
	}
	if failed > 0 {
		m.NotificationsFailed.Add(ctx, int64(failed))
	}
}

// RecordPruned records tokens removed from a user's registry.
func (m *Metrics) RecordPruned(ctx context.Context, n int) {
	if m != nil && n > 0 {
		m.TokensPruned.Add(ctx, int64(n))
	}
}

// RecordSkip records a change event that produced no notification.
func (m *Metrics) RecordSkip(ctx context.Context, eventType, reason string) {
	if m == nil {
		return
	}
	m.EventsSkipped.Add(ctx, 1, metric.WithAttributes(
		AttrEventType.String(eventType),
		AttrSkipReason.String(reason),
	))
}
