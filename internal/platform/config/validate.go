package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Validate reports every invalid setting at once, one joined error per key.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Telemetry.validate(),
		nonEmpty("region", c.Region),
		c.Events.validate(),
		oneOf("notification.locale", c.Notification.Locale, "tr", "en"),
		c.Store.validate(),
		c.Push.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var portErr error
	if s.Port < 1 || s.Port > 65535 {
		portErr = fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port)
	}
	return errors.Join(
		portErr,
		positive("server.read_timeout", s.ReadTimeout),
		positive("server.write_timeout", s.WriteTimeout),
		positive("server.shutdown_timeout", s.ShutdownTimeout),
		positive("server.readiness_timeout", s.ReadinessTimeout),
	)
}

func (l *LogConfig) validate() error {
	return errors.Join(
		oneOf("log.level", l.Level, "debug", "info", "warn", "error"),
		oneOf("log.format", l.Format, "json", "text", "cloud"),
	)
}

func (e *EventsConfig) validate() error {
	return errors.Join(
		atLeastOne("events.max_concurrency", e.MaxConcurrency),
		positive("events.acquire_timeout", e.AcquireTimeout),
		positive("events.handler_timeout", e.HandlerTimeout),
	)
}

func (s *StoreConfig) validate() error {
	if err := oneOf("store.driver", s.Driver, StoreDriverFirestore, StoreDriverSQLite); err != nil {
		return err
	}
	if s.Driver == StoreDriverSQLite {
		return nonEmpty("store.sqlite_path", s.SQLitePath)
	}
	return nonEmpty("store.project_id", s.ProjectID)
}

func (p *PushConfig) validate() error {
	return errors.Join(
		nonEmpty("push.project_id", p.ProjectID),
		oneOf("push.auth", p.Auth, PushAuthGoogle, PushAuthNone),
		atLeastOne("push.max_concurrency", p.MaxConcurrency),
		p.Client.validate("push.client"),
	)
}

func (cl *ClientConfig) validate(prefix string) error {
	errs := []error{
		nonEmpty(prefix+".base_url", cl.BaseURL),
		positive(prefix+".timeout", cl.Timeout),
		atLeastOne(prefix+".circuit_breaker.max_failures", cl.CircuitBreaker.MaxFailures),
	}
	switch rps := cl.RateLimit.RequestsPerSecond; {
	case rps < 0:
		errs = append(errs, fmt.Errorf("%s.rate_limit.requests_per_second must not be negative, got %g", prefix, rps))
	case rps > 0:
		errs = append(errs, atLeastOne(prefix+".rate_limit.burst_size", cl.RateLimit.BurstSize))
	}
	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}
	var errs []error
	errs = append(errs, oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp"))
	if t.Exporter == "otlp" {
		errs = append(errs, nonEmpty("telemetry.endpoint", t.Endpoint))
	}
	if t.SampleRatio < 0 || t.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("telemetry.sample_ratio must be between 0 and 1, got %g", t.SampleRatio))
	}
	return errors.Join(errs...)
}

func nonEmpty(key, v string) error {
	if v == "" {
		return fmt.Errorf("%s must not be empty", key)
	}
	return nil
}

func positive(key string, d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%s must be positive, got %s", key, d)
	}
	return nil
}

func atLeastOne(key string, n int) error {
	if n < 1 {
		return fmt.Errorf("%s must be >= 1, got %d", key, n)
	}
	return nil
}

func oneOf(key, v string, allowed ...string) error {
	if slices.Contains(allowed, v) {
		return nil
	}
	return fmt.Errorf("%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), v)
}
