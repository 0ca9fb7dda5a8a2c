package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kimneyapti/notifier/internal/adapters/http/middleware"
	"github.com/kimneyapti/notifier/internal/platform/config"
	"github.com/kimneyapti/notifier/internal/platform/httpclient"
)

func TestRequestIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		headers  map[string]string
		wantReq  string // "" means generated
		wantCorr string // "=req" means equal to the request ID
	}{
		{
			name:     "all generated",
			wantCorr: "=req",
		},
		{
			name:     "request id honored",
			headers:  map[string]string{"X-Request-ID": "req-1"},
			wantReq:  "req-1",
			wantCorr: "req-1",
		},
		{
			name:     "cloudevent id correlates redeliveries",
			headers:  map[string]string{"X-Request-ID": "req-2", "Ce-Id": "evt-9"},
			wantReq:  "req-2",
			wantCorr: "evt-9",
		},
		{
			name:     "explicit correlation id wins",
			headers:  map[string]string{"Ce-Id": "evt-9", "X-Correlation-ID": "corr-3"},
			wantCorr: "corr-3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotReq, gotCorr string
			h := middleware.RequestIDs()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				gotReq = middleware.RequestIDFromContext(r.Context())
				gotCorr = middleware.CorrelationIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodPost, "/events", http.NoBody)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if tt.wantReq == "" {
				if _, err := uuid.Parse(gotReq); err != nil {
					t.Errorf("generated request ID %q is not a UUID", gotReq)
				}
			} else if gotReq != tt.wantReq {
				t.Errorf("request ID = %q, want %q", gotReq, tt.wantReq)
			}

			wantCorr := tt.wantCorr
			if wantCorr == "=req" {
				wantCorr = gotReq
			}
			if gotCorr != wantCorr {
				t.Errorf("correlation ID = %q, want %q", gotCorr, wantCorr)
			}

			if rec.Header().Get("X-Request-ID") != gotReq {
				t.Errorf("X-Request-ID echo = %q, want %q", rec.Header().Get("X-Request-ID"), gotReq)
			}
			if rec.Header().Get("X-Correlation-ID") != gotCorr {
				t.Errorf("X-Correlation-ID echo = %q, want %q", rec.Header().Get("X-Correlation-ID"), gotCorr)
			}
		})
	}
}

func TestRequestIDs_ForwardedToOutboundCalls(t *testing.T) {
	t.Parallel()

	got := make(chan http.Header, 1)
	backend := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got <- r.Header.Clone()
	}))
	t.Cleanup(backend.Close)

	client := httpclient.New(&config.ClientConfig{BaseURL: backend.URL, Timeout: time.Second},
		"fcm", nil, discardLogger())

	h := middleware.RequestIDs()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		out, _ := http.NewRequestWithContext(r.Context(), http.MethodPost, client.BaseURL(), http.NoBody)
		resp, err := client.Do(out)
		if err == nil {
			_ = resp.Body.Close()
		}
	}))

	req := httptest.NewRequest(http.MethodPost, "/events", http.NoBody)
	req.Header.Set("X-Request-ID", "req-out")
	req.Header.Set("Ce-Id", "evt-out")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := <-got
	if out.Get("X-Request-ID") != "req-out" || out.Get("X-Correlation-ID") != "evt-out" {
		t.Errorf("outbound headers = %v", out)
	}
}

func TestIDsFromContext_Empty(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	if middleware.RequestIDFromContext(ctx) != "" || middleware.CorrelationIDFromContext(ctx) != "" {
		t.Error("empty context returned IDs")
	}
}
