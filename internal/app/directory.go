// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kimneyapti/notifier/internal/domain"
	"github.com/kimneyapti/notifier/internal/domain/notice"
	"github.com/kimneyapti/notifier/internal/ports"
)

// Compile-time check that Directory implements ports.NameResolver.
var _ ports.NameResolver = (*Directory)(nil)

// Directory resolves user and workspace ids to display names, substituting
// the locale's fallback literals for absent records and unset names.
type Directory struct {
	reader  ports.DirectoryReader
	phrases notice.Phrases
	logger  *slog.Logger
}

// NewDirectory creates a Directory reading profiles through reader. A nil
// logger is replaced with a no-op logger.
func NewDirectory(reader ports.DirectoryReader, locale notice.Locale, logger *slog.Logger) *Directory {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Directory{
		reader:  reader,
		phrases: notice.PhrasesFor(locale),
		logger:  logger,
	}
}

// ResolveUserName returns the display name of userID. An empty id, a missing
// user and an unset name all yield the unknown-user literal. Other store
// failures are returned.
func (d *Directory) ResolveUserName(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return d.phrases.UnknownUser, nil
	}

	name, err := d.reader.UserDisplayName(ctx, userID)
	return d.orFallback(ctx, "ResolveUserName", "user_id", userID, name, err, d.phrases.UnknownUser)
}

// ResolveWorkspaceName returns the name of workspaceID, falling back to
// notice.DefaultWorkspaceName the same way ResolveUserName does.
func (d *Directory) ResolveWorkspaceName(ctx context.Context, workspaceID string) (string, error) {
	if workspaceID == "" {
		return notice.DefaultWorkspaceName, nil
	}

	name, err := d.reader.WorkspaceName(ctx, workspaceID)
	return d.orFallback(ctx, "ResolveWorkspaceName", "workspace_id", workspaceID, name, err, notice.DefaultWorkspaceName)
}

func (d *Directory) orFallback(ctx context.Context, op, idKey, id, name string, err error, fallback string) (string, error) {
	switch {
	case err == nil && name != "":
		return name, nil
	case err == nil, errors.Is(err, domain.ErrNotFound):
		d.logger.DebugContext(ctx, "name not found, using fallback",
			slog.String("operation", op),
			slog.String(idKey, id),
			slog.String("fallback", fallback),
		)
		return fallback, nil
	default:
		d.logger.ErrorContext(ctx, "failed to read name",
			slog.String("operation", op),
			slog.String(idKey, id),
			slog.Any("error", err),
		)
		return "", fmt.Errorf("%s %s: %w", op, id, err)
	}
}
