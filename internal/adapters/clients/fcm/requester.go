package fcm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/kimneyapti/notifier/internal/platform/httpclient"
)

// requester performs single JSON round trips against the backend and turns
// every failure into a domain error.
type requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// post sends in as JSON to path and, on 200, decodes the answer into out.
func (r *requester) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding %s request: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.client.BaseURL()+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if resp == nil {
		r.logger.DebugContext(ctx, "no response from push backend",
			slog.String("path", path),
			slog.Any("error", err),
		)
		return translateTransportError(err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			r.logger.WarnContext(ctx, "closing push response body", slog.Any("error", cerr))
		}
	}()

	// Outage answers arrive with both resp and err; the body names the cause.
	if err != nil || resp.StatusCode != http.StatusOK {
		return translateHTTPError(resp)
	}
	if out == nil {
		return nil
	}
	// A 200 means the message was accepted; an unreadable body only costs
	// the message id.
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		r.logger.WarnContext(ctx, "unreadable push response after acceptance",
			slog.String("path", path),
			slog.Any("error", err),
		)
	}
	return nil
}
