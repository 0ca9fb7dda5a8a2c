package middleware

import (
	"bytes"
	"context"
	"errors"
	"maps"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/kimneyapti/notifier/internal/adapters/http/dto"
)

// handlerPanic carries a panic out of the goroutine Timeout runs the handler
// on, keeping the original stack for Recovery.
type handlerPanic struct {
	value any
	stack []byte
}

// Timeout returns middleware that bounds each request to d. The handler's
// context carries the deadline and its output is buffered. If d passes first
// the buffer is dropped, a 504 problem is written and any later write by the
// handler fails with http.ErrHandlerTimeout; under Concurrency the abandoned
// handler holds its slot until it returns. A panic in the handler is
// re-raised on the serving goroutine.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			r = r.WithContext(ctx)

			bw := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			exited := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer close(exited)
				defer func() {
					if v := recover(); v != nil {
						if v != http.ErrAbortHandler {
							v = &handlerPanic{value: v, stack: debug.Stack()}
						}
						panicked <- v
					}
				}()
				next.ServeHTTP(bw, r)
				close(done)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				bw.flushTo(w)
			case <-ctx.Done():
				bw.expire()
				release := detachSlot(r.Context())
				go func() {
					<-exited
					release()
				}()
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					dto.WriteProblem(w, r, dto.NewProblem(r, http.StatusGatewayTimeout,
						"event processing exceeded "+d.String()))
				}
			}
		})
	}
}

// bufferedWriter holds the handler's response until Timeout decides whether
// it is delivered.
type bufferedWriter struct {
	mu      sync.Mutex
	header  http.Header
	buf     bytes.Buffer
	status  int
	expired bool
}

func (bw *bufferedWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.expired || bw.status != 0 {
		return
	}
	bw.status = code
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.expired {
		return 0, http.ErrHandlerTimeout
	}
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	return bw.buf.Write(b)
}

func (bw *bufferedWriter) expire() {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	bw.expired = true
}

// flushTo delivers the buffered response. The handler has returned, so the
// header map is no longer shared.
func (bw *bufferedWriter) flushTo(w http.ResponseWriter) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	maps.Copy(w.Header(), bw.header)
	if bw.status != 0 {
		w.WriteHeader(bw.status)
	}
	if bw.buf.Len() > 0 {
		_, _ = w.Write(bw.buf.Bytes())
	}
}
