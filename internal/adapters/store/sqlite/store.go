// Package sqlite implements the token registry and directory ports on an
// embedded SQLite database. It backs the local profile and the operator CLI.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/kimneyapti/notifier/internal/domain"
	"github.com/kimneyapti/notifier/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TokenStore      = (*Store)(nil)
	_ ports.DirectoryReader = (*Store)(nil)
	_ ports.HealthChecker   = (*Store)(nil)
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Store is a SQLite-backed TokenStore and DirectoryReader.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := path
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
		dsn = path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == MemoryPath {
		// Each connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}

	if err := initSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// ListTokens returns the user's tokens in registration order.
func (s *Store) ListTokens(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT token FROM device_tokens WHERE user_id = ? ORDER BY created_at, rowid`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tokens for %s: %w", userID, err)
	}
	defer rows.Close()

	tokens := []string{}
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, fmt.Errorf("scanning token: %w", err)
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing tokens for %s: %w", userID, err)
	}
	return tokens, nil
}

// DeleteToken removes one token. Removing an absent token succeeds.
func (s *Store) DeleteToken(ctx context.Context, userID, token string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM device_tokens WHERE user_id = ? AND token = ?`, userID, token); err != nil {
		return fmt.Errorf("deleting token for %s: %w", userID, err)
	}
	return nil
}

// SaveToken registers a token for the user.
func (s *Store) SaveToken(ctx context.Context, userID, token string) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO device_tokens (user_id, token) VALUES (?, ?)`, userID, token); err != nil {
		return fmt.Errorf("saving token for %s: %w", userID, err)
	}
	return nil
}

// UserDisplayName returns the user's display name, or domain.ErrNotFound when
// the user is missing or the name is NULL or empty.
func (s *Store) UserDisplayName(ctx context.Context, userID string) (string, error) {
	return s.lookupName(ctx, `SELECT display_name FROM users WHERE id = ?`, userID)
}

// WorkspaceName returns the workspace's name under the same rules as
// UserDisplayName.
func (s *Store) WorkspaceName(ctx context.Context, workspaceID string) (string, error) {
	return s.lookupName(ctx, `SELECT name FROM workspaces WHERE id = ?`, workspaceID)
}

// PutUser creates or renames a user. An empty name clears it.
func (s *Store) PutUser(ctx context.Context, userID, displayName string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, display_name) VALUES (?, NULLIF(?, ''))
		 ON CONFLICT(id) DO UPDATE SET display_name = excluded.display_name`, userID, displayName)
	if err != nil {
		return fmt.Errorf("saving user %s: %w", userID, err)
	}
	return nil
}

// PutWorkspace creates or renames a workspace. An empty name clears it.
func (s *Store) PutWorkspace(ctx context.Context, workspaceID, name string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO workspaces (id, name) VALUES (?, NULLIF(?, ''))
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name`, workspaceID, name)
	if err != nil {
		return fmt.Errorf("saving workspace %s: %w", workspaceID, err)
	}
	return nil
}

// Name identifies the store in readiness reports.
func (s *Store) Name() string {
	return "sqlite"
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite: %w", err)
	}
	return nil
}

func (s *Store) lookupName(ctx context.Context, query, id string) (string, error) {
	var name sql.NullString
	err := s.db.QueryRowContext(ctx, query, id).Scan(&name)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", domain.ErrNotFound
	case err != nil:
		return "", fmt.Errorf("reading %s: %w", id, err)
	case !name.Valid || name.String == "":
		return "", domain.ErrNotFound
	}
	return name.String, nil
}
