package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/models"
)

type identityMetadataRepository struct {
	*DB
	now    func() time.Time
	logger *logger.Logger
}

func NewIdentityMetadataRepository(db *DB, logger *logger.Logger) IdentityMetadataStore {
	return &identityMetadataRepository{DB: db, now: time.Now, logger: logger}
}

func (r *identityMetadataRepository) Get(ctx context.Context, address string) (models.IdentityMetadata, bool) {
	query, args, err := buildSelectIdentityMetadataQuery(strings.TrimSpace(address))
	if err != nil {
		r.logger.Err(err).Str("func", "identityMetadataRepository.Get").Msg("failed to build query")
		return models.IdentityMetadata{}, false
	}

	var meta models.IdentityMetadata
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&meta.Email, &meta.RFC)
	if errors.Is(err, sql.ErrNoRows) {
		return models.IdentityMetadata{}, false
	}
	if err != nil {
		r.logger.Warn().Err(err).
			Str("func", "identityMetadataRepository.Get").
			Str("address", address).
			Msg("failed to read identity metadata")
		return models.IdentityMetadata{}, false
	}

	return meta, true
}

func (r *identityMetadataRepository) Put(ctx context.Context, address string, meta models.IdentityMetadata) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrEmptyAddress
	}

	query, args, err := buildUpsertIdentityMetadataQuery(address, meta, r.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "identityMetadataRepository.Put").
			Str("address", address).
			Msg("failed to upsert identity metadata")
		return fmt.Errorf("%w: put identity metadata: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *identityMetadataRepository) Clear(ctx context.Context) error {
	query, args, err := buildClearIdentityMetadataQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "identityMetadataRepository.Clear").Msg("failed to clear identity metadata")
		return fmt.Errorf("%w: clear identity metadata: %w", ErrExecutingQuery, err)
	}

	return nil
}
