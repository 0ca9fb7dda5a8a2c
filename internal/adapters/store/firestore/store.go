// Package firestore implements the token registry and directory ports on
// Cloud Firestore.
//
// Layout:
//
//	users/{userId}                 displayName
//	users/{userId}/tokens/{token}  one document per device token
//	workspaces/{workspaceId}       name
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kimneyapti/notifier/internal/domain"
	"github.com/kimneyapti/notifier/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TokenStore      = (*Store)(nil)
	_ ports.DirectoryReader = (*Store)(nil)
	_ ports.HealthChecker   = (*Store)(nil)
)

const (
	usersCollection      = "users"
	tokensCollection     = "tokens"
	workspacesCollection = "workspaces"

	fieldDisplayName = "displayName"
	fieldName        = "name"
	fieldCreatedAt   = "createdAt"

	// healthDoc is read on readiness checks. Its absence is a healthy answer.
	healthDoc = "_health"
)

// Store is a Firestore-backed TokenStore and DirectoryReader.
type Store struct {
	client *firestore.Client
}

// Open connects to the given project and database. The client honours
// FIRESTORE_EMULATOR_HOST.
func Open(ctx context.Context, projectID, databaseID string) (*Store, error) {
	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, fmt.Errorf("connecting to firestore: %w", err)
	}
	return New(client), nil
}

// New wraps an existing client.
func New(client *firestore.Client) *Store {
	return &Store{client: client}
}

// Close releases the client.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) tokens(userID string) *firestore.CollectionRef {
	return s.client.Collection(usersCollection).Doc(userID).Collection(tokensCollection)
}

// ListTokens returns the ids of the user's token documents.
func (s *Store) ListTokens(ctx context.Context, userID string) ([]string, error) {
	snaps, err := s.tokens(userID).Select().Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("listing tokens for %s: %w", userID, err)
	}

	tokens := make([]string, 0, len(snaps))
	for _, snap := range snaps {
		tokens = append(tokens, snap.Ref.ID)
	}
	return tokens, nil
}

// DeleteToken removes one token document. Firestore deletes without a
// precondition succeed when the document is absent.
func (s *Store) DeleteToken(ctx context.Context, userID, token string) error {
	if _, err := s.tokens(userID).Doc(token).Delete(ctx); err != nil {
		return fmt.Errorf("deleting token for %s: %w", userID, err)
	}
	return nil
}

// SaveToken creates or refreshes a token document.
func (s *Store) SaveToken(ctx context.Context, userID, token string) error {
	_, err := s.tokens(userID).Doc(token).Set(ctx, map[string]any{
		fieldCreatedAt: firestore.ServerTimestamp,
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("saving token for %s: %w", userID, err)
	}
	return nil
}

// UserDisplayName returns users/{userID}.displayName or domain.ErrNotFound.
func (s *Store) UserDisplayName(ctx context.Context, userID string) (string, error) {
	return s.stringField(ctx, s.client.Collection(usersCollection).Doc(userID), fieldDisplayName)
}

// WorkspaceName returns workspaces/{workspaceID}.name or domain.ErrNotFound.
func (s *Store) WorkspaceName(ctx context.Context, workspaceID string) (string, error) {
	return s.stringField(ctx, s.client.Collection(workspacesCollection).Doc(workspaceID), fieldName)
}

// Name identifies the store in readiness reports.
func (s *Store) Name() string {
	return "firestore"
}

// HealthCheck performs a single point read.
func (s *Store) HealthCheck(ctx context.Context) error {
	_, err := s.client.Collection(usersCollection).Doc(healthDoc).Get(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return fmt.Errorf("firestore: %w", err)
	}
	return nil
}

func (s *Store) stringField(ctx context.Context, ref *firestore.DocumentRef, field string) (string, error) {
	snap, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("reading %s: %w", ref.Path, err)
	}
	return fieldString(snap.Data(), field)
}

// fieldString extracts a non-empty string field. Missing, null, empty and
// non-string values all count as unset.
func fieldString(data map[string]any, field string) (string, error) {
	v, ok := data[field].(string)
	if !ok || v == "" {
		return "", domain.ErrNotFound
	}
	return v, nil
}
