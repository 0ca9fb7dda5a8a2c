package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/kimneyapti/notifier/internal/platform/logging"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, buf.String())
	}
	return m
}

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   []string
	}{
		{logging.FormatJSON, []string{`"level":"INFO"`, `"msg":"Sent notifications to user"`}},
		{logging.FormatText, []string{"level=INFO", `msg="Sent notifications to user"`}},
		{logging.FormatCloud, []string{`"severity":"INFO"`, `"message":"Sent notifications to user"`}},
		{"xml", []string{`"level":"INFO"`}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("Sent notifications to user")

			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output = %q, want it to contain %s", buf.String(), want)
				}
			}
		})
	}
}

func TestNew_CloudSeverities(t *testing.T) {
	t.Parallel()

	tests := []struct {
		log  func(*slog.Logger)
		want string
	}{
		{func(l *slog.Logger) { l.Debug("d") }, "DEBUG"},
		{func(l *slog.Logger) { l.Info("i") }, "INFO"},
		{func(l *slog.Logger) { l.Warn("w") }, "WARNING"},
		{func(l *slog.Logger) { l.Error("e") }, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.log(logging.New("debug", logging.FormatCloud, &buf))

			line := decodeLine(t, &buf)
			if line["severity"] != tt.want {
				t.Errorf("severity = %v, want %s", line["severity"], tt.want)
			}
			if _, ok := line["level"]; ok {
				t.Error("cloud format still emits level")
			}
			if _, ok := line["logging.googleapis.com/sourceLocation"]; !ok {
				t.Error("debug cloud logger missing sourceLocation")
			}
		})
	}
}

func TestNew_CloudKeepsGroupedKeys(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", logging.FormatCloud, &buf).Info("x", slog.Group("push", slog.String("msg", "inner")))

	line := decodeLine(t, &buf)
	group, ok := line["push"].(map[string]any)
	if !ok || group["msg"] != "inner" {
		t.Errorf("grouped key rewritten: %v", line["push"])
	}
}

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level     string
		log       func(*slog.Logger)
		wantEmpty bool
	}{
		{"debug", func(l *slog.Logger) { l.Debug("m") }, false},
		{"DEBUG", func(l *slog.Logger) { l.Debug("m") }, false},
		{"info", func(l *slog.Logger) { l.Debug("m") }, true},
		{"error", func(l *slog.Logger) { l.Warn("m") }, true},
		{"verbose", func(l *slog.Logger) { l.Debug("m") }, true},
		{"verbose", func(l *slog.Logger) { l.Info("m") }, false},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		tt.log(logging.New(tt.level, logging.FormatJSON, &buf))
		if got := buf.Len() == 0; got != tt.wantEmpty {
			t.Errorf("level %q: empty = %v, want %v (%q)", tt.level, got, tt.wantEmpty, buf.String())
		}
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debugBuf, infoBuf bytes.Buffer
	logging.New("debug", logging.FormatJSON, &debugBuf).Info("m")
	logging.New("info", logging.FormatJSON, &infoBuf).Info("m")

	if !strings.Contains(debugBuf.String(), `"source"`) {
		t.Error("debug logger missing source")
	}
	if strings.Contains(infoBuf.String(), `"source"`) {
		t.Error("info logger includes source")
	}
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	if logging.FromContext(context.Background()) != slog.Default() {
		t.Error("bare context should yield slog.Default()")
	}

	first := logging.New("info", logging.FormatJSON, &bytes.Buffer{})
	second := logging.New("debug", logging.FormatJSON, &bytes.Buffer{})

	ctx := logging.WithLogger(context.Background(), first)
	if logging.FromContext(ctx) != first {
		t.Error("FromContext did not return the stored logger")
	}
	ctx = logging.WithLogger(ctx, second)
	if logging.FromContext(ctx) != second {
		t.Error("FromContext did not return the most recent logger")
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	const fcmToken = "dQw4w9WgXcQ:APA91bHun4MxP5egoKMwt2KZFBaFUH-1RYqx"

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{"authorization header", slog.String("authorization", "Bearer supersecret"), "supersecret"},
		{"google api key header", slog.String("x-goog-api-key", "AIzaSyExample"), "AIzaSyExample"},
		{"password", slog.String("password", "hunter2"), "hunter2"},
		{"device token", slog.String("token", "device-token-abc123"), "device-token-abc123"},
		{"token list", slog.Any("tokens", []string{"device-token-abc123"}), "device-token-abc123"},
		{"bearer anywhere", slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"), "eyJhbGciOiJSUzI1NiJ9"},
		{"fcm token in error text", slog.String("error", "fcm UNREGISTERED: "+fcmToken), fcmToken},
		{"secret prefix", slog.String("secret_key", "s3cr3t"), "s3cr3t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", logging.FormatCloud, &buf).Warn("Token failed", slog.String("user_id", "u1"), tt.attr)

			out := buf.String()
			if strings.Contains(out, tt.secret) {
				t.Errorf("output leaks %q: %s", tt.secret, out)
			}
			if !strings.Contains(out, logging.Redacted) {
				t.Errorf("output missing %s marker: %s", logging.Redacted, out)
			}
			if !strings.Contains(out, `"user_id":"u1"`) {
				t.Errorf("output lost a non-sensitive field: %s", out)
			}
		})
	}
}
