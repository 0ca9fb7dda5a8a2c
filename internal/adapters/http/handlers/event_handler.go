package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/kimneyapti/notifier/internal/adapters/http/dto"
	"github.com/kimneyapti/notifier/internal/domain"
	"github.com/kimneyapti/notifier/internal/ports"
	"github.com/kimneyapti/notifier/internal/platform/logging"
)

// CloudEvents binary-mode headers.
const (
	headerCeType     = "Ce-Type"
	headerCeSubject  = "Ce-Subject"
	headerCeDocument = "Ce-Document"
)

// EventHandler receives item change events and hands them to the
// assignment service.
type EventHandler struct {
	service ports.AssignmentService
}

// NewEventHandler creates a new EventHandler with the given service port.
func NewEventHandler(service ports.AssignmentService) *EventHandler {
	return &EventHandler{service: service}
}

// Receive handles POST /events, routing on the CloudEvents type header.
func (h *EventHandler) Receive(w http.ResponseWriter, r *http.Request) {
	switch ceType := r.Header.Get(headerCeType); ceType {
	case dto.EventTypeCreated:
		h.ItemCreated(w, r)
	case dto.EventTypeUpdated:
		h.ItemUpdated(w, r)
	case "":
		dto.WriteError(w, r, &domain.ValidationError{
			Fields: map[string]string{"ce_type": "is required"},
		})
	default:
		dto.WriteError(w, r, &domain.ValidationError{
			Fields: map[string]string{"ce_type": fmt.Sprintf("unsupported: %q", ceType)},
		})
	}
}

// ItemCreated handles POST /events/items/created.
func (h *EventHandler) ItemCreated(w http.ResponseWriter, r *http.Request) {
	var data dto.DocumentEventData
	if !decodeBody(w, r, &data) {
		return
	}

	ev, err := data.ToCreatedEvent(documentPath(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	outcome, err := h.service.HandleItemCreated(r.Context(), ev)
	h.respond(w, r, outcome, err)
}

// ItemUpdated handles POST /events/items/updated.
func (h *EventHandler) ItemUpdated(w http.ResponseWriter, r *http.Request) {
	var data dto.DocumentEventData
	if !decodeBody(w, r, &data) {
		return
	}

	ev, err := data.ToUpdatedEvent(documentPath(r))
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}

	outcome, err := h.service.HandleItemUpdated(r.Context(), ev)
	h.respond(w, r, outcome, err)
}

// respond writes the outcome. A service error means a store read failed
// before anything was sent; it is reported as a gateway error so the event
// source redelivers.
func (h *EventHandler) respond(w http.ResponseWriter, r *http.Request, outcome *ports.Outcome, err error) {
	if err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "event processing failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		dto.WriteError(w, r, fmt.Errorf("%w: %w", domain.ErrUnavailable, err))
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToEventResponse(outcome))
}

// documentPath returns the document path carried in CloudEvents headers,
// preferring the Firestore document extension over the subject.
func documentPath(r *http.Request) string {
	if p := r.Header.Get(headerCeDocument); p != "" {
		return p
	}
	return r.Header.Get(headerCeSubject)
}
