package store

import (
	"context"
	"fmt"

	"github.com/jmvaldez/portero/internal/config"
	"github.com/jmvaldez/portero/internal/logger"
)

// ClientStorages groups the client side repositories.
type ClientStorages struct {
	SessionRepository
	db *DB
}

// NewClientStorages connects the local SQLite database, applies the
// embedded migrations and wires the session repository.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting local database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating local database: %w", err)
	}

	return &ClientStorages{
		SessionRepository: NewSessionRepositorySQLite(db, log),
		db:                db,
	}, nil
}

// Close releases the underlying database connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
