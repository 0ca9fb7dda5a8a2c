// Package middleware holds the inbound HTTP pipeline. The service mounts
//
//	Recovery → RequestIDs → OpenTelemetry → Logging
//
// on every route and adds
//
//	Concurrency → Timeout
//
// on the event routes only, so health probes are never queued behind
// deliveries. Each middleware is a func(http.Handler) http.Handler.
package middleware
