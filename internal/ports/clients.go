package ports

import (
	"context"

	"github.com/kimneyapti/notifier/internal/domain/push"
)

// TokenStore defines the client port for the per-user device token registry.
// Implemented by the store adapters; called by the Dispatcher and the CLI.
// Tokens are opaque strings and also the identity of their record.
type TokenStore interface {
	// ListTokens returns every token registered for the user.
	// A user with no tokens yields an empty slice and a nil error.
	ListTokens(ctx context.Context, userID string) ([]string, error)

	// DeleteToken removes a single token from the user's registry.
	// Deleting a token that is not present is not an error.
	DeleteToken(ctx context.Context, userID, token string) error

	// SaveToken registers a token for the user. Saving an existing token is a no-op.
	SaveToken(ctx context.Context, userID, token string) error
}

// DirectoryReader defines the client port for user and workspace profile reads.
// Implemented by the store adapters; called by the Directory in the app layer.
type DirectoryReader interface {
	// UserDisplayName returns the user's display name.
	// Returns domain.ErrNotFound if the user does not exist or has no name set.
	UserDisplayName(ctx context.Context, userID string) (string, error)

	// WorkspaceName returns the workspace's name.
	// Returns domain.ErrNotFound if the workspace does not exist or has no name set.
	WorkspaceName(ctx context.Context, workspaceID string) (string, error)
}

// PushSender defines the client port for the push delivery backend.
type PushSender interface {
	// SendMulticast delivers msg to every token in msg.Tokens and reports one
	// push.SendResponse per token, in order. A returned error means the whole
	// send failed and no per-token outcome is known.
	SendMulticast(ctx context.Context, msg *push.Message) (*push.BatchResponse, error)
}
