package config

const (
	defaultServerPort = 8080

	defaultEventsMaxConcurrency = 10

	defaultPushMaxConcurrency = 20

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 500.0
	defaultRateLimitBurst = 100
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":              "0.0.0.0",
		"server.port":              defaultServerPort,
		"server.read_timeout":      "5s",
		"server.write_timeout":     "60s",
		"server.idle_timeout":      "120s",
		"server.shutdown_timeout":  "10s",
		"server.readiness_timeout": "2s",

		"log.level":  "info",
		"log.format": "json",

		"region": "us-central1",

		"events.max_concurrency": defaultEventsMaxConcurrency,
		"events.acquire_timeout": "10s",
		"events.handler_timeout": "50s",

		"notification.locale": "tr",

		"store.driver":      StoreDriverFirestore,
		"store.project_id":  "",
		"store.database_id": "(default)",
		"store.sqlite_path": "notifier.db",

		"push.project_id":                             "",
		"push.auth":                                   PushAuthGoogle,
		"push.max_concurrency":                        defaultPushMaxConcurrency,
		"push.client.base_url":                        "https://fcm.googleapis.com",
		"push.client.timeout":                         "10s",
		"push.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"push.client.circuit_breaker.timeout":         "30s",
		"push.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"push.client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"push.client.rate_limit.burst_size":           defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "notifier",
		"telemetry.sample_ratio": 1.0,
	}
}
