package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/kimneyapti/notifier/internal/adapters/http/dto"
)

// Recovery returns middleware that turns a handler panic into a logged 500
// problem. It must be outermost. http.ErrAbortHandler is re-raised so the
// server still aborts the connection. When the response was already started
// only the log entry is written.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				value, stack := v, debug.Stack()
				if hp, ok := v.(*handlerPanic); ok {
					value, stack = hp.value, hp.stack
				}

				attrs := []any{
					slog.String("panic", fmt.Sprint(value)),
					slog.String("stack", string(stack)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				}
				if id := r.Header.Get(headerCeID); id != "" {
					attrs = append(attrs, slog.String("ce_id", id))
				}
				logger.ErrorContext(r.Context(), "panic recovered", attrs...)

				if !sw.written {
					dto.WriteProblem(sw, r, dto.NewProblem(r, http.StatusInternalServerError, "internal error"))
				}
			}()

			next.ServeHTTP(sw, r)
		})
	}
}
