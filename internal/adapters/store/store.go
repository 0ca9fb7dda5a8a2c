// Package store selects the document store backend named in configuration.
package store

import (
	"context"
	"fmt"

	"github.com/kimneyapti/notifier/internal/adapters/store/firestore"
	"github.com/kimneyapti/notifier/internal/adapters/store/sqlite"
	"github.com/kimneyapti/notifier/internal/platform/config"
	"github.com/kimneyapti/notifier/internal/ports"
)

// Backend is a store serving both the token registry and the directory.
type Backend interface {
	ports.TokenStore
	ports.DirectoryReader
	ports.HealthChecker
	Close() error
}

// Open connects to the configured backend.
func Open(ctx context.Context, cfg config.StoreConfig) (Backend, error) {
	var (
		b   Backend
		err error
	)
	switch cfg.Driver {
	case config.StoreDriverFirestore:
		b, err = firestore.Open(ctx, cfg.ProjectID, cfg.DatabaseID)
	case config.StoreDriverSQLite:
		b, err = sqlite.Open(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}
