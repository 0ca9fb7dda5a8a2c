// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server       ServerConfig       `koanf:"server"`
	Log          LogConfig          `koanf:"log"`
	Telemetry    TelemetryConfig    `koanf:"telemetry"`
	Region       string             `koanf:"region"`
	Events       EventsConfig       `koanf:"events"`
	Notification NotificationConfig `koanf:"notification"`
	Store        StoreConfig        `koanf:"store"`
	Push         PushConfig         `koanf:"push"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`

	// ShutdownTimeout bounds the drain of in-flight events on SIGTERM.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// ReadinessTimeout bounds each dependency probe behind /health/ready.
	ReadinessTimeout time.Duration `koanf:"readiness_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// EventsConfig bounds the inbound change-event workload.
type EventsConfig struct {
	// MaxConcurrency caps simultaneously handled events.
	MaxConcurrency int `koanf:"max_concurrency"`
	// AcquireTimeout is how long an event may wait for a free slot.
	AcquireTimeout time.Duration `koanf:"acquire_timeout"`
	// HandlerTimeout bounds the processing of a single event.
	HandlerTimeout time.Duration `koanf:"handler_timeout"`
}

// NotificationConfig selects the notification phrase set.
type NotificationConfig struct {
	Locale string `koanf:"locale"`
}

// Store drivers.
const (
	StoreDriverFirestore = "firestore"
	StoreDriverSQLite    = "sqlite"
)

// StoreConfig selects and configures the document store holding users,
// workspaces and device tokens.
type StoreConfig struct {
	Driver     string `koanf:"driver"`
	ProjectID  string `koanf:"project_id"`
	DatabaseID string `koanf:"database_id"`
	SQLitePath string `koanf:"sqlite_path"`
}

// Push backend auth modes.
const (
	PushAuthGoogle = "google"
	PushAuthNone   = "none"
)

// PushConfig holds push delivery backend settings.
type PushConfig struct {
	ProjectID string `koanf:"project_id"`
	// Auth is "google" for application default credentials or "none" for
	// emulators and tests.
	Auth string `koanf:"auth"`
	// MaxConcurrency bounds in-flight per-token sends of one multicast.
	MaxConcurrency int          `koanf:"max_concurrency"`
	Client         ClientConfig `koanf:"client"`
}

// ClientConfig holds outbound HTTP client settings. Requests are sent once;
// there is no retry policy.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds token-bucket settings. A zero RequestsPerSecond
// disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`

	// SampleRatio is the fraction of root traces kept; child spans follow
	// their parent's decision.
	SampleRatio float64 `koanf:"sample_ratio"`
}
