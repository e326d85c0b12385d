package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-id-wallet/internal/logger"
)

type kvRepository struct {
	*DB
	logger *logger.Logger
}

func NewKVRepository(db *DB, logger *logger.Logger) KVRepository {
	return &kvRepository{DB: db, logger: logger}
}

func (r *kvRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.DB.QueryRowContext(ctx, getKV, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Err(err).Str("func", "kvRepository.Get").Str("key", key).Msg("failed to read value")
		return nil, fmt.Errorf("%w: get kv[%s]: %w", ErrExecutingQuery, key, err)
	}
	return value, nil
}

func (r *kvRepository) Set(ctx context.Context, key string, value []byte) error {
	if _, err := r.DB.ExecContext(ctx, upsertKV, key, value); err != nil {
		r.logger.Err(err).Str("func", "kvRepository.Set").Str("key", key).Msg("failed to upsert value")
		return fmt.Errorf("%w: set kv[%s]: %w", ErrExecutingQuery, key, err)
	}
	return nil
}

func (r *kvRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.DB.ExecContext(ctx, deleteKV, key); err != nil {
		r.logger.Err(err).Str("func", "kvRepository.Delete").Str("key", key).Msg("failed to delete value")
		return fmt.Errorf("%w: delete kv[%s]: %w", ErrExecutingQuery, key, err)
	}
	return nil
}
