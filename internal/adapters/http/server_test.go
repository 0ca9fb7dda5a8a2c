package http_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	adapthttp "github.com/kimneyapti/notifier/internal/adapters/http"
	"github.com/kimneyapti/notifier/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func loopbackConfig() config.ServerConfig {
	return config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            0,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		IdleTimeout:     30 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

// startServer binds, serves in the background and returns the result
// channel of Start.
func startServer(t *testing.T, s *adapthttp.Server) <-chan error {
	t.Helper()
	if err := s.Listen(); err != nil {
		t.Fatalf("Listen() error: %v", err)
	}
	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()
	return errCh
}

func TestServer_AddrBeforeListen(t *testing.T) {
	t.Parallel()

	cfg := loopbackConfig()
	cfg.Port = 9090
	s := adapthttp.NewServer(cfg, http.NotFoundHandler(), nil)

	if got := s.Addr(); got != "127.0.0.1:9090" {
		t.Errorf("Addr() = %q, want 127.0.0.1:9090", got)
	}
}

func TestServer_ServesAndDrains(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(loopbackConfig(), http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	}), discardLogger())
	errCh := startServer(t, s)

	if strings.HasSuffix(s.Addr(), ":0") {
		t.Fatalf("Addr() = %q, want the bound port", s.Addr())
	}

	resp, err := http.Get("http://" + s.Addr() + "/health/live")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "ok" {
		t.Errorf("body = %q, want ok", body)
	}

	if err := s.Shutdown(t.Context()); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("Start() error after shutdown: %v", err)
	}
}

func TestServer_ShutdownWaitsForInFlight(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})
	s := adapthttp.NewServer(loopbackConfig(), http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(entered)
		<-release
		w.WriteHeader(http.StatusOK)
	}), discardLogger())
	errCh := startServer(t, s)

	got := make(chan int, 1)
	go func() {
		resp, err := http.Post("http://"+s.Addr()+"/events", "application/json", strings.NewReader("{}"))
		if err != nil {
			got <- 0
			return
		}
		_ = resp.Body.Close()
		got <- resp.StatusCode
	}()
	<-entered

	shutdownErr := make(chan error, 1)
	go func() { shutdownErr <- s.Shutdown(context.Background()) }()

	time.Sleep(20 * time.Millisecond)
	close(release)

	if status := <-got; status != http.StatusOK {
		t.Errorf("in-flight status = %d, want 200", status)
	}
	if err := <-shutdownErr; err != nil {
		t.Errorf("Shutdown() error: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Errorf("Start() error: %v", err)
	}
}

func TestServer_ShutdownTimeoutApplies(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	cfg := loopbackConfig()
	cfg.ShutdownTimeout = 30 * time.Millisecond
	s := adapthttp.NewServer(cfg, http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		close(entered)
		<-release
	}), discardLogger())
	startServer(t, s)

	go func() {
		resp, err := http.Get("http://" + s.Addr() + "/events")
		if err == nil {
			_ = resp.Body.Close()
		}
	}()
	<-entered

	err := s.Shutdown(context.Background())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Shutdown() = %v, want deadline exceeded", err)
	}
}

func TestServer_ListenConflict(t *testing.T) {
	t.Parallel()

	first := adapthttp.NewServer(loopbackConfig(), http.NotFoundHandler(), discardLogger())
	startServer(t, first)
	t.Cleanup(func() { _ = first.Shutdown(context.Background()) })

	_, portStr, err := net.SplitHostPort(first.Addr())
	if err != nil {
		t.Fatalf("SplitHostPort: %v", err)
	}
	cfg := loopbackConfig()
	if cfg.Port, err = strconv.Atoi(portStr); err != nil {
		t.Fatalf("Atoi: %v", err)
	}

	second := adapthttp.NewServer(cfg, http.NotFoundHandler(), discardLogger())
	if err := second.Listen(); err == nil {
		t.Fatal("Listen() on a taken port = nil, want error")
	}
}
