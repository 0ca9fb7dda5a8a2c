// Package fcm implements the push delivery port on top of the Firebase Cloud
// Messaging HTTP v1 API. A multicast is delivered as one send per token,
// issued concurrently through the instrumented HTTP client, so every token
// gets its own outcome.
package fcm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/kimneyapti/notifier/internal/domain"
	"github.com/kimneyapti/notifier/internal/domain/push"
	"github.com/kimneyapti/notifier/internal/platform/fanout"
	"github.com/kimneyapti/notifier/internal/platform/httpclient"
	"github.com/kimneyapti/notifier/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.PushSender    = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

// ServiceName identifies the push backend in traces, metrics and health checks.
const ServiceName = "fcm"

// Client sends push messages to FCM.
type Client struct {
	http       *httpclient.Client
	req        *requester
	sendPath   string
	maxWorkers int
	logger     *slog.Logger
}

// NewClient creates a Client that sends through hc on behalf of projectID.
// maxWorkers bounds the concurrent per-token sends of a single multicast.
func NewClient(hc *httpclient.Client, projectID string, maxWorkers int, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		http:       hc,
		req:        &requester{client: hc, logger: logger},
		sendPath:   "/v1/projects/" + url.PathEscape(projectID) + "/messages:send",
		maxWorkers: maxWorkers,
		logger:     logger,
	}
}

// SendMulticast delivers msg to every token and returns one response per
// token in input order.
//
// The call fails as a whole only when msg is invalid or when every token
// failed with domain.ErrUnavailable, meaning the backend was never reached
// in a way that says anything about the tokens.
func (c *Client) SendMulticast(ctx context.Context, msg *push.Message) (*push.BatchResponse, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	results := fanout.Run(ctx, c.maxWorkers, msg.Tokens, func(ctx context.Context, token string) (string, error) {
		var resp sendResponse
		if err := c.req.post(ctx, c.sendPath, toSendRequest(msg, token), &resp); err != nil {
			return "", err
		}
		return resp.Name, nil
	})

	batch := &push.BatchResponse{Responses: make([]push.SendResponse, len(results))}
	unavailable := 0
	var firstErr error
	for i, r := range results {
		err := r.Err
		// Sends skipped by a cancelled fan-out never reached the backend.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			err = translateTransportError(err)
		}
		batch.Responses[i] = push.SendResponse{Token: msg.Tokens[i], MessageID: r.Value, Err: err}
		if errors.Is(err, domain.ErrUnavailable) {
			unavailable++
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if unavailable == len(results) {
		return nil, fmt.Errorf("fcm: all %d sends failed: %w", unavailable, firstErr)
	}
	return batch, nil
}

// Name returns the identifier used when this component is registered with a
// ports.HealthRegistry.
func (c *Client) Name() string {
	return ServiceName
}

// HealthCheck reports the push backend's availability from the circuit
// breaker state. No network call is made.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}
