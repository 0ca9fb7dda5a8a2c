package app

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/kimneyapti/notifier/internal/domain/item"
	"github.com/kimneyapti/notifier/internal/domain/notice"
	"github.com/kimneyapti/notifier/internal/platform/telemetry"
	"github.com/kimneyapti/notifier/internal/ports"
)

// Event types reported in logs and metrics.
const (
	eventCreated = "item.created"
	eventUpdated = "item.updated"
)

// Compile-time check that AssignmentService implements ports.AssignmentService.
var _ ports.AssignmentService = (*AssignmentService)(nil)

// AssignmentService turns item change events into assignment notifications.
// It decides whether an event is a notifiable assignment, resolves the
// assigner and workspace names, composes the notice and hands it to the
// Notifier.
type AssignmentService struct {
	names    ports.NameResolver
	notifier ports.Notifier
	locale   notice.Locale
	metrics  *telemetry.Metrics
	logger   *slog.Logger
	tracer   trace.Tracer
}

// NewAssignmentService creates an AssignmentService composing notices in the
// given locale. metrics may be nil; a nil logger is replaced with a no-op logger.
func NewAssignmentService(
	names ports.NameResolver,
	notifier ports.Notifier,
	locale notice.Locale,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *AssignmentService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AssignmentService{
		names:    names,
		notifier: notifier,
		locale:   locale,
		metrics:  metrics,
		logger:   logger,
		tracer:   otel.Tracer(tracerName),
	}
}

// HandleItemCreated notifies the assignee of a newly created item unless the
// item is unassigned or the creator assigned it to themselves.
func (s *AssignmentService) HandleItemCreated(ctx context.Context, ev item.CreatedEvent) (*ports.Outcome, error) {
	ctx, span := s.startSpan(ctx, eventCreated, ev.WorkspaceID, ev.ItemID)
	defer span.End()

	a, reason := item.FromCreated(ev)
	if reason != item.SkipNone {
		return s.skip(ctx, eventCreated, a, reason), nil
	}

	defaultTitle := notice.PhrasesFor(s.locale).NewItemTitle
	return s.notify(ctx, a, ev.Item, defaultTitle, "Notification sent for new item assignment")
}

// HandleItemUpdated notifies the new assignee when an update changed the
// item's assignee to someone other than the modifying user.
func (s *AssignmentService) HandleItemUpdated(ctx context.Context, ev item.UpdatedEvent) (*ports.Outcome, error) {
	ctx, span := s.startSpan(ctx, eventUpdated, ev.WorkspaceID, ev.ItemID)
	defer span.End()

	a, reason := item.FromUpdated(ev)
	if reason != item.SkipNone {
		return s.skip(ctx, eventUpdated, a, reason), nil
	}

	defaultTitle := notice.PhrasesFor(s.locale).ItemTitle
	return s.notify(ctx, a, ev.After, defaultTitle, "Notification sent for item reassignment")
}

// notify resolves both names concurrently, composes the notice and dispatches
// it. A lookup failure aborts before anything is sent.
func (s *AssignmentService) notify(
	ctx context.Context,
	a item.AssignmentEvent,
	it *item.Item,
	defaultTitle, logMsg string,
) (*ports.Outcome, error) {
	var assignerName, workspaceName string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		assignerName, err = s.names.ResolveUserName(gctx, a.ActingUserID)
		return err
	})
	g.Go(func() error {
		var err error
		workspaceName, err = s.names.ResolveWorkspaceName(gctx, a.WorkspaceID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "failed to resolve names",
			slog.String("operation", "notify"),
			slog.String("workspace_id", a.WorkspaceID),
			slog.String("item_id", a.ItemID),
			slog.Any("error", err),
		)
		return nil, err
	}

	n := notice.ComposeAssignment(s.locale, assignerName, it.TitleOr(defaultTitle), it.Category())
	data := notice.AssignmentData(a.WorkspaceID, a.ItemID, workspaceName)

	res := s.notifier.NotifyUser(ctx, a.NewAssignee, n, data)

	s.logger.InfoContext(ctx, logMsg,
		slog.String("workspace_id", a.WorkspaceID),
		slog.String("item_id", a.ItemID),
		slog.String("assignee_id", a.NewAssignee),
		slog.String("assigner_id", a.ActingUserID),
		slog.Int("success_count", res.SuccessCount),
		slog.Int("pruned", len(res.PrunedTokens)),
	)

	return &ports.Outcome{
		Notified:   true,
		Assignment: a,
		Result:     res,
	}, nil
}

func (s *AssignmentService) skip(ctx context.Context, eventType string, a item.AssignmentEvent, reason item.SkipReason) *ports.Outcome {
	s.logger.DebugContext(ctx, "no notification required",
		slog.String("event_type", eventType),
		slog.String("reason", reason.String()),
	)
	s.metrics.RecordSkip(ctx, eventType, reason.String())
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("skip.reason", reason.String()))
	return &ports.Outcome{Reason: reason, Assignment: a}
}

func (s *AssignmentService) startSpan(ctx context.Context, eventType, workspaceID, itemID string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "AssignmentService."+eventType,
		trace.WithAttributes(
			attribute.String("event.type", eventType),
			attribute.String("workspace.id", workspaceID),
			attribute.String("item.id", itemID),
		),
	)
}
