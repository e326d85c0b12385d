package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-id-wallet/internal/config"
	"github.com/MKhiriev/go-id-wallet/internal/logger"
)

// ClientStorages groups all client-side storage into a single value that can
// be passed to the engine and the wallet adapter.
type ClientStorages struct {
	// Sessions keeps the auth session and the remembered wallet address.
	Sessions SessionStore

	// IdentityMetadata keeps email/rfc enrichment per address.
	IdentityMetadata IdentityMetadataStore

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger:
//  1. An empty cfg.DB.DSN yields process-lifetime storage: [NopSessionStore]
//     and an in-memory metadata store.
//  2. Otherwise an SQLite connection is opened (the file is created if it
//     does not exist yet) and pending migrations are applied.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	if strings.TrimSpace(cfg.DB.DSN) == "" {
		logger.Info().Msg("no local database configured, session state will not survive restarts")
		return &ClientStorages{
			Sessions:         NopSessionStore{},
			IdentityMetadata: NewMemoryIdentityMetadataStore(),
		}, nil
	}

	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Sessions:         NewSessionStore(NewKVRepository(db, logger), logger),
		IdentityMetadata: NewIdentityMetadataRepository(db, logger),
		db:               db,
	}, nil
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
