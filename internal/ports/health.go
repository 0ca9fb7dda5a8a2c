package ports

import (
	"context"
	"time"
)

// HealthChecker is implemented by dependencies that can report whether they
// are able to serve, such as the push backend client and the token store.
type HealthChecker interface {
	// Name identifies the dependency in readiness output, e.g. "fcm".
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must honor
	// ctx because probes run under a deadline.
	HealthCheck(ctx context.Context) error
}

// CheckResult is the outcome of one dependency probe.
type CheckResult struct {
	Err      error
	Critical bool
	Elapsed  time.Duration
}

// HealthReport is the outcome of one readiness probe.
type HealthReport struct {
	Checks map[string]CheckResult
}

// Ready reports whether every critical dependency passed.
func (r HealthReport) Ready() bool {
	for _, c := range r.Checks {
		if c.Critical && c.Err != nil {
			return false
		}
	}
	return true
}

// Degraded reports whether a non-critical dependency failed.
func (r HealthReport) Degraded() bool {
	for _, c := range r.Checks {
		if !c.Critical && c.Err != nil {
			return true
		}
	}
	return false
}

// HealthRegistry runs the registered probes for the readiness endpoint.
type HealthRegistry interface {
	// Register adds checker. A failing critical checker makes the instance
	// not ready; a failing non-critical one only marks it degraded.
	Register(checker HealthChecker, critical bool)

	// Check probes every registered dependency.
	Check(ctx context.Context) HealthReport
}
