package fcm

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/kimneyapti/notifier/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 64 << 10

// FCM error codes reported in the FcmError detail.
const (
	codeUnregistered     = "UNREGISTERED"
	codeInvalidArgument  = "INVALID_ARGUMENT"
	codeSenderIDMismatch = "SENDER_ID_MISMATCH"
	codeQuotaExceeded    = "QUOTA_EXCEEDED"
	codeUnavailable      = "UNAVAILABLE"
	codeInternal         = "INTERNAL"
	codeThirdPartyAuth   = "THIRD_PARTY_AUTH_ERROR"
)

// translateHTTPError maps a non-2xx send response to a domain error.
//
// Token-level rejections wrap domain.ErrTokenRejected. Throttling, server
// errors and credential problems wrap domain.ErrUnavailable because they say
// nothing about the token. Anything else is returned unclassified.
func translateHTTPError(resp *http.Response) error {
	body := parseErrorBody(resp)

	detail := body.Message
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	code := body.Status
	for _, d := range body.Details {
		if d.ErrorCode != "" {
			code = d.ErrorCode
			break
		}
	}

	switch {
	case code == codeUnregistered, code == codeSenderIDMismatch, code == codeInvalidArgument:
		return fmt.Errorf("fcm %s: %s: %w", code, detail, domain.ErrTokenRejected)

	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("fcm %d: %s: %w", resp.StatusCode, detail, domain.ErrTokenRejected)

	case code == codeQuotaExceeded, code == codeUnavailable, code == codeInternal, code == codeThirdPartyAuth,
		resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("fcm %d: %s: %w", resp.StatusCode, detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("fcm: unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// translateTransportError classifies an error returned before any response
// was read: circuit open, rate limiter wait, network failure or deadline.
// None of them implicate the token.
func translateTransportError(err error) error {
	if errors.Is(err, domain.ErrUnavailable) {
		return err
	}
	return fmt.Errorf("fcm transport: %w: %w", domain.ErrUnavailable, err)
}

// parseErrorBody reads the Google API error envelope. Returns an empty body
// if the response is not JSON or cannot be parsed.
func parseErrorBody(resp *http.Response) errorBody {
	if resp.Body == nil {
		return errorBody{}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return errorBody{}
	}

	var env errorResponse
	if err := json.Unmarshal(raw, &env); err != nil {
		return errorBody{}
	}
	return env.Error
}
