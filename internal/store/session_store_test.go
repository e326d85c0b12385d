// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/internal/utils"
	"github.com/MKhiriev/go-id-wallet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingKV fails every call; the store must swallow the errors.
type failingKV struct{}

func (failingKV) Get(context.Context, string) ([]byte, error) { return nil, errors.New("boom") }
func (failingKV) Set(context.Context, string, []byte) error   { return errors.New("boom") }
func (failingKV) Delete(context.Context, string) error        { return errors.New("boom") }

func newSQLiteSessionStore(t *testing.T) (SessionStore, KVRepository) {
	t.Helper()
	kv := NewKVRepository(newMemoryDB(t), logger.Nop())
	return NewSessionStore(kv, logger.Nop()), kv
}

func TestSessionStore_SaveLoadClear(t *testing.T) {
	s, _ := newSQLiteSessionStore(t)
	ctx := context.Background()

	assert.Nil(t, s.Load(ctx))

	session := &models.AuthSession{Token: "opaque", Email: "ana@x.com", DisplayName: "Ana", PublicAddress: "GANA"}
	s.Save(ctx, session)

	got := s.Load(ctx)
	require.NotNil(t, got)
	assert.Equal(t, *session, *got)

	s.Save(ctx, nil)
	assert.Nil(t, s.Load(ctx))
}

func TestSessionStore_CorruptedSessionLoadsNil(t *testing.T) {
	s, kv := newSQLiteSessionStore(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, KeyAuthSession, []byte("{not json")))

	assert.Nil(t, s.Load(ctx))
}

func TestSessionStore_BlankTokenLoadsNil(t *testing.T) {
	s, kv := newSQLiteSessionStore(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, KeyAuthSession, []byte(`{"token":"  ","email":"ana@x.com"}`)))

	assert.Nil(t, s.Load(ctx))
}

func TestSessionStore_ExpiredJWTLoadsNil(t *testing.T) {
	s, _ := newSQLiteSessionStore(t)
	ctx := context.Background()

	expired, err := utils.GenerateJWTToken("backend", "ana@x.com", -time.Minute, "key")
	require.NoError(t, err)
	live, err := utils.GenerateJWTToken("backend", "ana@x.com", time.Hour, "key")
	require.NoError(t, err)

	s.Save(ctx, &models.AuthSession{Token: expired})
	assert.Nil(t, s.Load(ctx))

	s.Save(ctx, &models.AuthSession{Token: live})
	got := s.Load(ctx)
	require.NotNil(t, got)
	assert.Equal(t, live, got.Token)
}

func TestSessionStore_WalletAddress(t *testing.T) {
	s, _ := newSQLiteSessionStore(t)
	ctx := context.Background()

	assert.Empty(t, s.LoadWalletAddress(ctx))

	s.SaveWalletAddress(ctx, " GANA ")
	assert.Equal(t, "GANA", s.LoadWalletAddress(ctx))

	s.SaveWalletAddress(ctx, "")
	assert.Empty(t, s.LoadWalletAddress(ctx))
}

func TestSessionStore_StorageFailuresAreSwallowed(t *testing.T) {
	s := NewSessionStore(failingKV{}, logger.Nop())
	ctx := context.Background()

	assert.NotPanics(t, func() {
		s.Save(ctx, &models.AuthSession{Token: "t"})
		s.Save(ctx, nil)
		s.SaveWalletAddress(ctx, "GANA")
	})
	assert.Nil(t, s.Load(ctx))
	assert.Empty(t, s.LoadWalletAddress(ctx))
}

func TestNopSessionStore(t *testing.T) {
	var s SessionStore = NopSessionStore{}
	ctx := context.Background()

	s.Save(ctx, &models.AuthSession{Token: "t"})
	s.SaveWalletAddress(ctx, "GANA")

	assert.Nil(t, s.Load(ctx))
	assert.Empty(t, s.LoadWalletAddress(ctx))
}
