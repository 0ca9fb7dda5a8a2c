package handlers

import (
	"net/http"

	"github.com/kimneyapti/notifier/internal/ports"
)

// Readiness states.
const (
	stateReady    = "ready"
	stateDegraded = "degraded"
	stateNotReady = "not_ready"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler backed by registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

type checkBody struct {
	Status     string `json:"status"`
	Critical   bool   `json:"critical"`
	Error      string `json:"error,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

type readinessBody struct {
	Status string               `json:"status"`
	Checks map[string]checkBody `json:"checks"`
}

// Liveness handles GET /health/live. The process answering is enough.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness handles GET /health/ready. A failing store makes the instance
// not ready (503); a failing push backend only degrades it, since events
// still need acknowledging while the breaker is open.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	report := h.registry.Check(r.Context())

	body := readinessBody{Status: stateReady, Checks: make(map[string]checkBody, len(report.Checks))}
	for name, c := range report.Checks {
		cb := checkBody{Status: "ok", Critical: c.Critical, DurationMS: c.Elapsed.Milliseconds()}
		if c.Err != nil {
			cb.Status = "failing"
			cb.Error = c.Err.Error()
		}
		body.Checks[name] = cb
	}

	code := http.StatusOK
	switch {
	case !report.Ready():
		body.Status = stateNotReady
		code = http.StatusServiceUnavailable
	case report.Degraded():
		body.Status = stateDegraded
	}
	writeJSON(w, r, code, body)
}
