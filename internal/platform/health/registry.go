// Package health runs readiness probes against the notifier's dependencies.
// Probes run concurrently, each under its own deadline, so one hung
// dependency cannot stall the readiness endpoint.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/kimneyapti/notifier/internal/platform/fanout"
	"github.com/kimneyapti/notifier/internal/ports"
)

// DefaultCheckTimeout bounds each probe unless WithCheckTimeout overrides it.
const DefaultCheckTimeout = 2 * time.Second

var _ ports.HealthRegistry = (*Registry)(nil)

type entry struct {
	checker  ports.HealthChecker
	critical bool
}

// Registry implements ports.HealthRegistry. It is safe for concurrent use.
type Registry struct {
	mu           sync.RWMutex
	entries      []entry
	checkTimeout time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout sets the per-probe deadline.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.checkTimeout = d
		}
	}
}

// New returns an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{checkTimeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker.
func (r *Registry) Register(checker ports.HealthChecker, critical bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry{checker: checker, critical: critical})
}

// Check runs every probe. When two checkers share a name the one registered
// last wins.
func (r *Registry) Check(ctx context.Context) ports.HealthReport {
	r.mu.RLock()
	entries := append([]entry(nil), r.entries...)
	r.mu.RUnlock()

	results := fanout.Run(ctx, len(entries), entries, func(ctx context.Context, e entry) (ports.CheckResult, error) {
		ctx, cancel := context.WithTimeout(ctx, r.checkTimeout)
		defer cancel()

		start := time.Now()
		err := e.checker.HealthCheck(ctx)
		return ports.CheckResult{Err: err, Critical: e.critical, Elapsed: time.Since(start)}, nil
	})

	report := ports.HealthReport{Checks: make(map[string]ports.CheckResult, len(entries))}
	for i, res := range results {
		cr := res.Value
		if res.Err != nil {
			// The probe never ran because ctx had already ended.
			cr = ports.CheckResult{Err: res.Err, Critical: entries[i].critical}
		}
		report.Checks[entries[i].checker.Name()] = cr
	}
	return report
}
