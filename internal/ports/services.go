package ports

import (
	"context"

	"github.com/kimneyapti/notifier/internal/domain/item"
	"github.com/kimneyapti/notifier/internal/domain/notice"
)

// NameResolver defines the service port for human-readable name lookups with
// fallbacks already applied.
type NameResolver interface {
	// ResolveUserName returns the user's display name, or the locale's
	// unknown-user literal when the user is absent or unnamed.
	ResolveUserName(ctx context.Context, userID string) (string, error)

	// ResolveWorkspaceName returns the workspace name, or
	// notice.DefaultWorkspaceName when the workspace is absent or unnamed.
	ResolveWorkspaceName(ctx context.Context, workspaceID string) (string, error)
}

// Notifier defines the service port for delivering one notice to every device
// of a user. It never fails: errors are logged and reported in the result.
type Notifier interface {
	NotifyUser(ctx context.Context, userID string, n notice.Notice, data map[string]string) DispatchResult
}

// AssignmentService defines the service port for item change events.
// Implemented by the application layer; called by the event handlers.
type AssignmentService interface {
	// HandleItemCreated notifies the assignee of a newly created item.
	// A returned error is a store failure the caller should surface for redelivery.
	HandleItemCreated(ctx context.Context, ev item.CreatedEvent) (*Outcome, error)

	// HandleItemUpdated notifies the new assignee when an item's assignee changed.
	HandleItemUpdated(ctx context.Context, ev item.UpdatedEvent) (*Outcome, error)
}

// DispatchResult summarizes one NotifyUser call.
type DispatchResult struct {
	// Tokens is the number of tokens the user had registered.
	Tokens       int
	SuccessCount int
	FailedTokens []string
	PrunedTokens []string
	// Err is the listing or send error that stopped the dispatch, if any.
	// It has already been logged.
	Err error
}

// Outcome reports what the AssignmentService did with one event.
type Outcome struct {
	Notified   bool
	Reason     item.SkipReason
	Assignment item.AssignmentEvent
	Result     DispatchResult
}
