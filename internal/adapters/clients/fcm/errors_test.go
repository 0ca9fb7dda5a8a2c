package fcm

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/sony/gobreaker/v2"

	"github.com/kimneyapti/notifier/internal/domain"
)

func errorResp(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func fcmBody(status, code string) string {
	return `{"error":{"code":400,"message":"boom","status":"` + status +
		`","details":[{"@type":"type.googleapis.com/google.firebase.fcm.v1.FcmError","errorCode":"` + code + `"}]}}`
}

func TestTranslateHTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"unregistered", http.StatusNotFound, fcmBody("NOT_FOUND", codeUnregistered), domain.ErrTokenRejected},
		{"sender mismatch", http.StatusForbidden, fcmBody("PERMISSION_DENIED", codeSenderIDMismatch), domain.ErrTokenRejected},
		{"invalid argument", http.StatusBadRequest, fcmBody("INVALID_ARGUMENT", codeInvalidArgument), domain.ErrTokenRejected},
		{"bare 404", http.StatusNotFound, "", domain.ErrTokenRejected},
		{"quota", http.StatusTooManyRequests, fcmBody("RESOURCE_EXHAUSTED", codeQuotaExceeded), domain.ErrUnavailable},
		{"unavailable", http.StatusServiceUnavailable, fcmBody("UNAVAILABLE", codeUnavailable), domain.ErrUnavailable},
		{"internal", http.StatusInternalServerError, fcmBody("INTERNAL", codeInternal), domain.ErrUnavailable},
		{"apns auth", http.StatusUnauthorized, fcmBody("UNAUTHENTICATED", codeThirdPartyAuth), domain.ErrUnavailable},
		{"bad gateway html", http.StatusBadGateway, "<html>oops</html>", domain.ErrUnavailable},
		{"unauthorized", http.StatusUnauthorized, "", domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := translateHTTPError(errorResp(tt.status, tt.body))
			if !errors.Is(err, tt.want) {
				t.Errorf("translateHTTPError() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTranslateHTTPError_Unclassified(t *testing.T) {
	t.Parallel()

	err := translateHTTPError(errorResp(http.StatusConflict, `{"error":{"message":"odd"}}`))
	if errors.Is(err, domain.ErrTokenRejected) || errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("translateHTTPError() = %v, want unclassified", err)
	}
	if !strings.Contains(err.Error(), "odd") {
		t.Errorf("error %q should carry the backend message", err)
	}
}

func TestTranslateTransportError(t *testing.T) {
	t.Parallel()

	err := translateTransportError(gobreaker.ErrOpenState)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("error = %v, should keep the cause", err)
	}

	already := translateTransportError(domain.ErrUnavailable)
	if already != domain.ErrUnavailable {
		t.Errorf("already-classified error was rewrapped: %v", already)
	}
}
