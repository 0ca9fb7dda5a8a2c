package fcm

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/kimneyapti/notifier/internal/domain"
	"github.com/kimneyapti/notifier/internal/domain/notice"
	"github.com/kimneyapti/notifier/internal/domain/push"
	"github.com/kimneyapti/notifier/internal/platform/config"
	"github.com/kimneyapti/notifier/internal/platform/httpclient"
)

const testProject = "demo-notifier"

// newTestClient creates an FCM client pointing at the given test server with
// a breaker that never opens during a test.
func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   100,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	logger := slog.New(slog.DiscardHandler)
	hc := httpclient.New(cfg, ServiceName, nil, logger)
	return NewClient(hc, testProject, 4, logger)
}

func testMessage(tokens ...string) *push.Message {
	return &push.Message{
		Tokens: tokens,
		Notice: notice.Notice{
			Title: "🐛 Sana iş atandı!",
			Body:  `Alice sana "Fix login" atadı`,
		},
		Data: map[string]string{
			"type":        "item_assigned",
			"workspaceId": "w1",
			"itemId":      "i1",
		},
		Hints: push.AssignmentHints(),
	}
}

// writeFCMError writes a Google API error envelope carrying an FcmError code.
func writeFCMError(t *testing.T, w http.ResponseWriter, status int, apiStatus, fcmCode string) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := map[string]any{
		"error": map[string]any{
			"code":    status,
			"message": "rejected",
			"status":  apiStatus,
			"details": []map[string]any{{
				"@type":     "type.googleapis.com/google.firebase.fcm.v1.FcmError",
				"errorCode": fcmCode,
			}},
		},
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		t.Errorf("failed to encode error body: %v", err)
	}
}

func TestClient_SendMulticast_AllSucceed(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	seen := map[string]sendRequest{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/projects/"+testProject+"/messages:send" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		var req sendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		mu.Lock()
		seen[req.Message.Token] = req
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(sendResponse{Name: "projects/demo-notifier/messages/" + req.Message.Token})
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)
	resp, err := client.SendMulticast(context.Background(), testMessage("tok-a", "tok-b", "tok-c"))
	if err != nil {
		t.Fatalf("SendMulticast() error = %v", err)
	}

	if got := resp.SuccessCount(); got != 3 {
		t.Errorf("SuccessCount() = %d, want 3", got)
	}
	for i, want := range []string{"tok-a", "tok-b", "tok-c"} {
		r := resp.Responses[i]
		if r.Token != want {
			t.Errorf("Responses[%d].Token = %q, want %q", i, r.Token, want)
		}
		if !strings.HasSuffix(r.MessageID, want) {
			t.Errorf("Responses[%d].MessageID = %q, want suffix %q", i, r.MessageID, want)
		}
	}

	req := seen["tok-b"]
	if req.Message.Notification.Title != "🐛 Sana iş atandı!" {
		t.Errorf("notification.title = %q", req.Message.Notification.Title)
	}
	if req.Message.Data["itemId"] != "i1" {
		t.Errorf("data.itemId = %q, want i1", req.Message.Data["itemId"])
	}
	if req.Message.Android == nil || req.Message.Android.Priority != "HIGH" {
		t.Errorf("android.priority = %+v, want HIGH", req.Message.Android)
	}
	if a := req.Message.Android; a == nil || a.Notification == nil || a.Notification.ChannelID != "task_assignment" {
		t.Errorf("android.notification = %+v, want channel task_assignment", a)
	}
	if req.Message.APNS == nil || req.Message.APNS.Payload.APS.Badge == nil || *req.Message.APNS.Payload.APS.Badge != 1 {
		t.Errorf("apns.payload.aps.badge = %+v, want 1", req.Message.APNS)
	}
}

func TestClient_SendMulticast_PerTokenFailures(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req sendRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		switch req.Message.Token {
		case "stale":
			writeFCMError(t, w, http.StatusNotFound, "NOT_FOUND", codeUnregistered)
		case "throttled":
			writeFCMError(t, w, http.StatusTooManyRequests, "RESOURCE_EXHAUSTED", codeQuotaExceeded)
		default:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(sendResponse{Name: "projects/p/messages/1"})
		}
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)
	resp, err := client.SendMulticast(context.Background(), testMessage("good", "stale", "throttled"))
	if err != nil {
		t.Fatalf("SendMulticast() error = %v", err)
	}

	if got := resp.SuccessCount(); got != 1 {
		t.Errorf("SuccessCount() = %d, want 1", got)
	}
	if !errors.Is(resp.Responses[1].Err, domain.ErrTokenRejected) {
		t.Errorf("stale token error = %v, want ErrTokenRejected", resp.Responses[1].Err)
	}
	if !errors.Is(resp.Responses[2].Err, domain.ErrUnavailable) {
		t.Errorf("throttled token error = %v, want ErrUnavailable", resp.Responses[2].Err)
	}
}

func TestClient_SendMulticast_UnreadableAcceptanceCountsAsSent(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"name":`))
	}))
	defer ts.Close()

	resp, err := newTestClient(t, ts.URL).SendMulticast(context.Background(), testMessage("t1", "t2"))
	if err != nil {
		t.Fatalf("SendMulticast() error = %v", err)
	}
	if got := resp.SuccessCount(); got != 2 {
		t.Errorf("SuccessCount() = %d, want 2", got)
	}
	for _, r := range resp.Responses {
		if r.Err != nil || r.MessageID != "" {
			t.Errorf("response for %s = %+v, want success without message id", r.Token, r)
		}
	}
}

func TestClient_SendMulticast_TotalFailure(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeFCMError(t, w, http.StatusServiceUnavailable, "UNAVAILABLE", codeUnavailable)
	}))
	defer ts.Close()

	client := newTestClient(t, ts.URL)
	resp, err := client.SendMulticast(context.Background(), testMessage("a", "b"))
	if err == nil {
		t.Fatal("SendMulticast() expected error when every send is unavailable")
	}
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
	if resp != nil {
		t.Errorf("response = %+v, want nil", resp)
	}
}

func TestClient_SendMulticast_NetworkError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := ts.URL
	ts.Close()

	client := newTestClient(t, url)
	_, err := client.SendMulticast(context.Background(), testMessage("a"))
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

func TestClient_SendMulticast_InvalidMessage(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "http://127.0.0.1:1")
	_, err := client.SendMulticast(context.Background(), testMessage())
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestClient_SendMulticast_CancelledContext(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(sendResponse{Name: "x"})
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(t, ts.URL)
	_, err := client.SendMulticast(ctx, testMessage("a", "b"))
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

func TestClient_HealthCheck(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "http://127.0.0.1:1")
	if got := client.Name(); got != "fcm" {
		t.Errorf("Name() = %q, want fcm", got)
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v, want nil for a closed breaker", err)
	}
}

func TestNewTransport(t *testing.T) {
	t.Parallel()

	rt, err := NewTransport(context.Background(), config.PushAuthNone)
	if err != nil {
		t.Fatalf("NewTransport(none) error = %v", err)
	}
	if rt != http.DefaultTransport {
		t.Error("NewTransport(none) should return http.DefaultTransport")
	}

	if _, err := NewTransport(context.Background(), "basic"); err == nil {
		t.Error("NewTransport(basic) expected error")
	}
}
