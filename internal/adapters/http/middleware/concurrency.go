package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/kimneyapti/notifier/internal/adapters/http/dto"
	"github.com/kimneyapti/notifier/internal/platform/logging"
)

// Concurrency returns middleware that bounds the number of requests handled
// at once. A request beyond the limit waits for a free slot for at most
// acquireTimeout (or until its own context ends) and is then rejected with
// 503 Service Unavailable, which event sources treat as retryable. A handler
// abandoned by Timeout keeps its slot until it actually returns.
func Concurrency(limit int, acquireTimeout time.Duration) func(http.Handler) http.Handler {
	sem := semaphore.NewWeighted(int64(max(limit, 1)))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), acquireTimeout)
			err := sem.Acquire(ctx, 1)
			cancel()
			if err != nil {
				logging.FromContext(r.Context()).WarnContext(r.Context(), "concurrency limit reached",
					slog.Int("limit", limit),
					slog.String("path", r.URL.Path),
				)
				dto.WriteProblem(w, r, dto.NewProblem(r, http.StatusServiceUnavailable,
					fmt.Sprintf("%d events already in flight", limit)))
				return
			}
			s := &slot{release: sync.OnceFunc(func() { sem.Release(1) })}
			defer s.done()

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), slotKey{}, s)))
		})
	}
}

type slotKey struct{}

// slot is the semaphore weight held by one request. It is released when the
// request returns unless a handler still running past that point took it over.
type slot struct {
	release  func()
	detached bool
}

func (s *slot) done() {
	if !s.detached {
		s.release()
	}
}

// detachSlot hands the request's slot to the caller, who must invoke the
// returned func once the work it stands for has ended. Outside Concurrency
// it returns a no-op.
func detachSlot(ctx context.Context) func() {
	s, ok := ctx.Value(slotKey{}).(*slot)
	if !ok {
		return func() {}
	}
	s.detached = true
	return s.release
}
