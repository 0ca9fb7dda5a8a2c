package fanout_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kimneyapti/notifier/internal/platform/fanout"
)

var errRejected = errors.New("token rejected")

// deliver stands in for a per-token send: tokens prefixed "bad" fail.
func deliver(_ context.Context, token string) (string, error) {
	if len(token) >= 3 && token[:3] == "bad" {
		return "", fmt.Errorf("%s: %w", token, errRejected)
	}
	return "projects/p/messages/" + token, nil
}

func TestRun_Outcomes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		workers int
		tokens  []string
		wantErr []bool
	}{
		{"none", 4, []string{}, []bool{}},
		{"single", 4, []string{"a"}, []bool{false}},
		{"mixed", 2, []string{"a", "bad-1", "b", "bad-2"}, []bool{false, true, false, true}},
		{"all rejected", 8, []string{"bad-1", "bad-2"}, []bool{true, true}},
		{"workers below one", -3, []string{"a", "bad", "c"}, []bool{false, true, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			results := fanout.Run(t.Context(), tt.workers, tt.tokens, deliver)
			if results == nil || len(results) != len(tt.tokens) {
				t.Fatalf("results = %v, want %d entries", results, len(tt.tokens))
			}
			for i, r := range results {
				if got := r.Err != nil; got != tt.wantErr[i] {
					t.Errorf("results[%d].Err = %v, want error %v", i, r.Err, tt.wantErr[i])
				}
				if r.Err != nil && !errors.Is(r.Err, errRejected) {
					t.Errorf("results[%d].Err = %v, want wrapped rejection", i, r.Err)
				}
				if r.Err == nil && r.Value != "projects/p/messages/"+tt.tokens[i] {
					t.Errorf("results[%d].Value = %q", i, r.Value)
				}
			}
		})
	}
}

func TestRun_SlowFirstTokenKeepsItsSlot(t *testing.T) {
	t.Parallel()

	delays := []time.Duration{40 * time.Millisecond, 0, 10 * time.Millisecond, 0}
	results := fanout.Run(t.Context(), len(delays), delays, func(_ context.Context, d time.Duration) (time.Duration, error) {
		time.Sleep(d)
		return d, nil
	})

	for i, r := range results {
		if r.Value != delays[i] {
			t.Errorf("results[%d] = %v, want %v", i, r.Value, delays[i])
		}
	}
}

func TestRun_WorkerLimit(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{0, 1, 3, 50} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			t.Parallel()

			var inFlight, peak atomic.Int32
			tokens := make([]int, 12)

			fanout.Run(t.Context(), workers, tokens, func(context.Context, int) (struct{}, error) {
				n := inFlight.Add(1)
				defer inFlight.Add(-1)
				for p := peak.Load(); n > p && !peak.CompareAndSwap(p, n); p = peak.Load() {
				}
				time.Sleep(5 * time.Millisecond)
				return struct{}{}, nil
			})

			limit := int32(min(max(workers, 1), len(tokens)))
			if got := peak.Load(); got > limit {
				t.Errorf("peak in flight = %d, want at most %d", got, limit)
			}
		})
	}
}

func TestRun_CancelSkipsPendingTokens(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	var calls atomic.Int32
	results := fanout.Run(ctx, 1, []string{"first", "second", "third"}, func(context.Context, string) (bool, error) {
		if calls.Add(1) == 1 {
			cancel()
		}
		return true, nil
	})

	if got := calls.Load(); got != 1 {
		t.Errorf("fn called %d times, want 1", got)
	}
	if results[0].Err != nil || !results[0].Value {
		t.Errorf("results[0] = %+v, want completed send", results[0])
	}
	for i, r := range results[1:] {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("results[%d].Err = %v, want context.Canceled", i+1, r.Err)
		}
	}
}

func TestRun_AlreadyCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(t.Context(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	results := fanout.Run(ctx, 4, []string{"a", "b"}, func(context.Context, string) (int, error) {
		t.Error("fn called after deadline")
		return 0, nil
	})
	for i, r := range results {
		if !errors.Is(r.Err, context.DeadlineExceeded) {
			t.Errorf("results[%d].Err = %v, want deadline exceeded", i, r.Err)
		}
	}
}
