package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/kimneyapti/notifier/internal/adapters/http/dto"
	"github.com/kimneyapti/notifier/internal/domain"
	"github.com/kimneyapti/notifier/internal/platform/logging"
)

// maxEventBytes caps an event body. Firestore documents are at most 1 MiB
// and an update event carries two of them.
const maxEventBytes = 2 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding response",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}
}

// decodeBody decodes the JSON event body into dst. On failure it writes a
// 400 problem and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxEventBytes)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	msg := "invalid JSON"
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		msg = domain.MsgRequired
	case errors.As(err, &tooLarge):
		msg = "exceeds size limit"
	}
	dto.WriteError(w, r, &domain.ValidationError{Fields: map[string]string{"body": msg}})
	return false
}
