// Package httpclient wraps outbound calls to a single downstream service with
// a circuit breaker, a token-bucket rate limiter, W3C trace propagation,
// request metadata headers and client metrics.
//
// Every request is attempted exactly once. Throttling and server errors are
// reported to the caller as a *StatusError and count against the breaker;
// any other status is handed back untouched for the caller to interpret.
//
//	hc := httpclient.New(&cfg.Push.Client, "fcm", metrics, logger,
//		httpclient.WithTransport(oauthTransport))
//	resp, err := hc.Do(req)
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/kimneyapti/notifier/internal/platform/config"
	"github.com/kimneyapti/notifier/internal/platform/telemetry"
)

// StatusError reports a response whose status marks the downstream itself as
// unhealthy (429 or 5xx). The response is still returned alongside it.
type StatusError struct {
	Service    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s answered HTTP %d", e.Service, e.StatusCode)
}

// IsCircuitOpen reports whether err is a circuit breaker rejection, meaning
// the request was never sent.
func IsCircuitOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// Client sends requests to one downstream service.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[*http.Response]
	limiter     *rate.Limiter // nil when limiting is disabled
	metrics     *telemetry.Metrics
}

// Option customizes a Client.
type Option func(*Client)

// WithTransport replaces the underlying round tripper, for example with an
// OAuth2 transport that attaches bearer credentials.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = rt
	}
}

// New builds a Client for serviceName. metrics may be nil.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		metrics:     metrics,
	}

	if cfg.RateLimit.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	maxFailures := cfg.CircuitBreaker.MaxFailures
	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= maxFailures
		},
		IsExcluded: callerGaveUp,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name returns the downstream service identifier.
func (c *Client) Name() string {
	return c.serviceName
}

// Do sends req once, bound to req.Context().
//
// On a 429 or 5xx answer both the response and a *StatusError are returned
// and the caller must close the body. When the breaker rejects the call, the
// limiter wait is cut short or the transport fails, resp is nil.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("%s rate limit: %w", c.serviceName, err)
			}
		}
		return c.send(ctx, req)
	})

	c.recordMetrics(ctx, req.Method, start, resp, err)
	return resp, err
}

// send performs the single attempt inside the breaker.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	setMetadataHeaders(ctx, req.Header)

	ctx, span := c.startSpan(ctx, req)
	defer span.End()

	resp, err := c.httpClient.Do(req.WithContext(ctx))
	if err == nil && isOutageStatus(resp.StatusCode) {
		err = &StatusError{Service: c.serviceName, StatusCode: resp.StatusCode}
	}
	endSpan(span, resp, err)
	return resp, err
}

// HealthCheck reports downstream availability from the breaker state. No
// request is made.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}

func (c *Client) recordMetrics(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	c.metrics.RecordClientRequest(ctx, c.serviceName, method, status, classify(resp, err), time.Since(start))
}

// classify names the outcome of one call for metrics.
func classify(resp *http.Response, err error) string {
	switch {
	case IsCircuitOpen(err):
		return "circuit_open"
	case resp != nil && resp.StatusCode < http.StatusBadRequest:
		return "success"
	case resp != nil && err == nil:
		return "rejected"
	default:
		return "error"
	}
}

// isOutageStatus reports whether status says the downstream is overloaded
// or broken rather than the request being wrong.
func isOutageStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// callerGaveUp keeps cancellations by the caller out of the breaker counts.
func callerGaveUp(err error) bool {
	return errors.Is(err, context.Canceled)
}

func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
