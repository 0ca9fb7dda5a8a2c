package app

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kimneyapti/notifier/internal/domain/notice"
	"github.com/kimneyapti/notifier/internal/domain/push"
	"github.com/kimneyapti/notifier/internal/platform/telemetry"
	"github.com/kimneyapti/notifier/internal/ports"
)

const tracerName = "github.com/kimneyapti/notifier/internal/app"

// Compile-time check that Dispatcher implements ports.Notifier.
var _ ports.Notifier = (*Dispatcher)(nil)

// Dispatcher delivers a notice to every registered device of a user and
// removes tokens the push backend reported as failed. It never fails: every
// error is logged, counted and reported in the returned ports.DispatchResult.
type Dispatcher struct {
	tokens  ports.TokenStore
	sender  ports.PushSender
	metrics *telemetry.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewDispatcher creates a Dispatcher. metrics may be nil; a nil logger is
// replaced with a no-op logger.
func NewDispatcher(tokens ports.TokenStore, sender ports.PushSender, metrics *telemetry.Metrics, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{
		tokens:  tokens,
		sender:  sender,
		metrics: metrics,
		logger:  logger,
		tracer:  otel.Tracer(tracerName),
	}
}

// NotifyUser sends n with the given data payload to all of userID's devices.
//
// A user without tokens is a no-op. Tokens are sent in batches of at most
// push.MaxTokens. Every token the backend reported as failed is deleted one
// at a time afterwards; a failed deletion is logged and skipped.
func (d *Dispatcher) NotifyUser(ctx context.Context, userID string, n notice.Notice, data map[string]string) ports.DispatchResult {
	ctx, span := d.tracer.Start(ctx, "Dispatcher.NotifyUser",
		trace.WithAttributes(attribute.String("user.id", userID)))
	defer span.End()

	var res ports.DispatchResult

	tokens, err := d.tokens.ListTokens(ctx, userID)
	if err != nil {
		d.logger.ErrorContext(ctx, "failed to list tokens",
			slog.String("operation", "NotifyUser"),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		res.Err = err
		span.RecordError(err)
		span.SetStatus(codes.Error, "listing tokens")
		return res
	}

	res.Tokens = len(tokens)
	span.SetAttributes(attribute.Int("tokens.count", len(tokens)))
	if len(tokens) == 0 {
		d.logger.InfoContext(ctx, "No tokens found for user", slog.String("user_id", userID))
		return res
	}

	// Tokens the backend answered for individually. A batch lost to a failed
	// call is counted as failed but never pruned.
	var rejected []string
	for batch := range slices.Chunk(tokens, push.MaxTokens) {
		msg := &push.Message{
			Tokens: batch,
			Notice: n,
			Data:   data,
			Hints:  push.AssignmentHints(),
		}

		batchRes, err := d.sender.SendMulticast(ctx, msg)
		if err != nil {
			d.logger.ErrorContext(ctx, "failed to send notifications",
				slog.String("operation", "NotifyUser"),
				slog.String("user_id", userID),
				slog.Int("tokens", len(batch)),
				slog.Any("error", err),
			)
			res.Err = errors.Join(res.Err, err)
			res.FailedTokens = append(res.FailedTokens, batch...)
			continue
		}

		res.SuccessCount += batchRes.SuccessCount()
		for _, r := range batchRes.Responses {
			if r.Success() {
				continue
			}
			res.FailedTokens = append(res.FailedTokens, r.Token)
			rejected = append(rejected, r.Token)
			d.logger.WarnContext(ctx, "Token failed",
				slog.String("user_id", userID),
				slog.String("token", r.Token),
				slog.Any("error", r.Err),
			)
		}
	}

	d.logger.InfoContext(ctx, "Sent notifications to user",
		slog.String("user_id", userID),
		slog.Int("success_count", res.SuccessCount),
		slog.Int("token_count", res.Tokens),
	)
	d.metrics.RecordDelivery(ctx, res.SuccessCount, len(res.FailedTokens))

	res.PrunedTokens = d.prune(ctx, userID, rejected)

	if res.Err != nil {
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, "sending notifications")
	}
	span.SetAttributes(
		attribute.Int("tokens.success", res.SuccessCount),
		attribute.Int("tokens.pruned", len(res.PrunedTokens)),
	)
	return res
}

// prune deletes tokens sequentially and returns the ones actually removed.
func (d *Dispatcher) prune(ctx context.Context, userID string, tokens []string) []string {
	var pruned []string
	for _, tok := range tokens {
		if err := d.tokens.DeleteToken(ctx, userID, tok); err != nil {
			d.logger.WarnContext(ctx, "failed to delete invalid token",
				slog.String("operation", "NotifyUser"),
				slog.String("user_id", userID),
				slog.String("token", tok),
				slog.Any("error", err),
			)
			continue
		}
		d.logger.InfoContext(ctx, "Deleted invalid token",
			slog.String("user_id", userID),
			slog.String("token", tok),
		)
		pruned = append(pruned, tok)
	}
	d.metrics.RecordPruned(ctx, len(pruned))
	return pruned
}
