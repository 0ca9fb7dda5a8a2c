package dto

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/kimneyapti/notifier/internal/domain"
	"github.com/kimneyapti/notifier/internal/platform/logging"
)

// ProblemContentType is the media type of every error body.
const ProblemContentType = "application/problem+json"

// Problem is an RFC 9457 problem details body.
//
// Retryable is an extension member: event sources redeliver on any 5xx, so
// it is true exactly when redelivering the same event may succeed.
type Problem struct {
	Type      string       `json:"type"`
	Title     string       `json:"title"`
	Status    int          `json:"status"`
	Detail    string       `json:"detail,omitempty"`
	Instance  string       `json:"instance,omitempty"`
	Retryable bool         `json:"retryable"`
	Errors    []FieldError `json:"errors,omitempty"`
}

// FieldError names one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewProblem builds a Problem for status with a free-form detail.
func NewProblem(r *http.Request, status int, detail string) Problem {
	return Problem{
		Type:      "about:blank",
		Title:     http.StatusText(status),
		Status:    status,
		Detail:    detail,
		Instance:  r.URL.Path,
		Retryable: status >= http.StatusInternalServerError,
	}
}

// ProblemFromError maps err onto a Problem. Unclassified errors become a 500
// whose detail does not echo the error text.
func ProblemFromError(r *http.Request, err error) Problem {
	status := StatusFor(err)

	detail := err.Error()
	if status == http.StatusInternalServerError {
		detail = "internal error"
	}
	p := NewProblem(r, status, detail)

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		p.Errors = fieldErrors(verr.Fields)
	}
	return p
}

// StatusFor maps domain errors to HTTP statuses. A 4xx drops the event at
// the source; a 5xx makes it redeliver.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// WriteError renders err as a problem response.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	WriteProblem(w, r, ProblemFromError(r, err))
}

// WriteProblem writes p with its status. A 503 without a Retry-After header
// gets a one second hint.
func WriteProblem(w http.ResponseWriter, r *http.Request, p Problem) {
	h := w.Header()
	h.Set("Content-Type", ProblemContentType)
	if p.Status == http.StatusServiceUnavailable && h.Get("Retry-After") == "" {
		h.Set("Retry-After", "1")
	}
	w.WriteHeader(p.Status)

	if err := json.NewEncoder(w).Encode(p); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding problem response",
			slog.Int("status", p.Status),
			slog.Any("error", err),
		)
	}
}

func fieldErrors(fields map[string]string) []FieldError {
	out := make([]FieldError, 0, len(fields))
	for field, msg := range fields {
		out = append(out, FieldError{Field: field, Message: msg})
	}
	slices.SortFunc(out, func(a, b FieldError) int {
		return cmp.Compare(a.Field, b.Field)
	})
	return out
}
