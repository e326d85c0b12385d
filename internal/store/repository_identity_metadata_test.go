// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityMetadataRepository_PutGetClear(t *testing.T) {
	repo := NewIdentityMetadataRepository(newMemoryDB(t), logger.Nop())
	ctx := context.Background()

	_, ok := repo.Get(ctx, "GANA")
	assert.False(t, ok)

	require.NoError(t, repo.Put(ctx, "GANA", models.IdentityMetadata{Email: "old@x.com", RFC: "RFC0"}))
	require.NoError(t, repo.Put(ctx, "GANA", models.IdentityMetadata{Email: "ana@x.com", RFC: "RFCGANA"}))
	require.NoError(t, repo.Put(ctx, "GBOB", models.IdentityMetadata{Email: "bob@x.com"}))

	meta, ok := repo.Get(ctx, "GANA")
	require.True(t, ok)
	assert.Equal(t, models.IdentityMetadata{Email: "ana@x.com", RFC: "RFCGANA"}, meta)

	require.NoError(t, repo.Clear(ctx))
	_, ok = repo.Get(ctx, "GANA")
	assert.False(t, ok)
	_, ok = repo.Get(ctx, "GBOB")
	assert.False(t, ok)
}

func TestIdentityMetadataRepository_PutEmptyAddress(t *testing.T) {
	repo := NewIdentityMetadataRepository(newMemoryDB(t), logger.Nop())

	err := repo.Put(context.Background(), "  ", models.IdentityMetadata{Email: "a@x.com"})

	assert.ErrorIs(t, err, ErrEmptyAddress)
}

func TestIdentityMetadataRepository_PutExecError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &identityMetadataRepository{
		DB:     db,
		now:    func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) },
		logger: logger.Nop(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO identity_metadata")).
		WithArgs("GANA", "ana@x.com", "RFC1", "2026-01-01T00:00:00Z").
		WillReturnError(errors.New("database is locked"))

	err := repo.Put(context.Background(), "GANA", models.IdentityMetadata{Email: "ana@x.com", RFC: "RFC1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIdentityMetadataRepository_GetQueryErrorIsSoft(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIdentityMetadataRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT email, rfc FROM identity_metadata")).
		WithArgs("GANA").
		WillReturnError(errors.New("no such table"))

	_, ok := repo.Get(context.Background(), "GANA")

	assert.False(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIdentityMetadataRepository_ClearError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIdentityMetadataRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM identity_metadata")).
		WillReturnError(errors.New("readonly database"))

	err := repo.Clear(context.Background())

	assert.ErrorIs(t, err, ErrExecutingQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryIdentityMetadataStore(t *testing.T) {
	m := NewMemoryIdentityMetadataStore()
	ctx := context.Background()

	assert.ErrorIs(t, m.Put(ctx, "", models.IdentityMetadata{}), ErrEmptyAddress)
	require.NoError(t, m.Put(ctx, "GANA", models.IdentityMetadata{Email: "ana@x.com"}))

	meta, ok := m.Get(ctx, "GANA")
	require.True(t, ok)
	assert.Equal(t, "ana@x.com", meta.Email)

	require.NoError(t, m.Clear(ctx))
	_, ok = m.Get(ctx, "GANA")
	assert.False(t, ok)
}
