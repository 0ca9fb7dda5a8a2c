// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kimneyapti/notifier/internal/adapters/http/dto"
	"github.com/kimneyapti/notifier/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. eventMiddleware, when
// non-nil, wraps only the event routes so health probes are never queued
// behind events.
func NewRouter(
	eventHandler *handlers.EventHandler,
	healthHandler *handlers.HealthHandler,
	eventMiddleware func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Event sources drop 4xx deliveries, so stray paths must not look
	// retryable.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, dto.NewProblem(req, http.StatusNotFound, "no route for "+req.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, dto.NewProblem(req, http.StatusMethodNotAllowed, req.Method+" not allowed"))
	})

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// Change events from the document store.
	r.Route("/events", func(r chi.Router) {
		if eventMiddleware != nil {
			r.Use(eventMiddleware)
		}

		r.Post("/", eventHandler.Receive)
		r.Post("/items/created", eventHandler.ItemCreated)
		r.Post("/items/updated", eventHandler.ItemUpdated)
	})

	return r
}
