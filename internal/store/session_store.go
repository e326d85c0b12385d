package store

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/internal/utils"
	"github.com/MKhiriev/go-id-wallet/models"
)

// Durable keys in the kv table.
const (
	KeyWalletAddress = "wallet.address"
	KeyAuthSession   = "auth.session"
)

type sessionStore struct {
	kv     KVRepository
	now    func() time.Time
	logger *logger.Logger
}

// NewSessionStore returns a [SessionStore] over kv.
func NewSessionStore(kv KVRepository, log *logger.Logger) SessionStore {
	return &sessionStore{kv: kv, now: time.Now, logger: log}
}

func (s *sessionStore) Load(ctx context.Context) *models.AuthSession {
	raw, err := s.kv.Get(ctx, KeyAuthSession)
	if err != nil || len(raw) == 0 {
		return nil
	}

	var session models.AuthSession
	if err = json.Unmarshal(raw, &session); err != nil {
		s.logger.Warn().Err(err).Str("func", "sessionStore.Load").Msg("stored session is corrupted, ignoring")
		return nil
	}
	if !session.HasToken() {
		return nil
	}
	if utils.TokenExpired(session.Token, s.now()) {
		s.logger.Info().Str("func", "sessionStore.Load").Msg("stored session token has expired")
		return nil
	}

	return &session
}

func (s *sessionStore) Save(ctx context.Context, session *models.AuthSession) {
	if session == nil {
		_ = s.kv.Delete(ctx, KeyAuthSession)
		return
	}

	raw, err := json.Marshal(session)
	if err != nil {
		s.logger.Err(err).Str("func", "sessionStore.Save").Msg("failed to encode session")
		return
	}
	_ = s.kv.Set(ctx, KeyAuthSession, raw)
}

func (s *sessionStore) LoadWalletAddress(ctx context.Context) string {
	raw, err := s.kv.Get(ctx, KeyWalletAddress)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

func (s *sessionStore) SaveWalletAddress(ctx context.Context, address string) {
	address = strings.TrimSpace(address)
	if address == "" {
		_ = s.kv.Delete(ctx, KeyWalletAddress)
		return
	}
	_ = s.kv.Set(ctx, KeyWalletAddress, []byte(address))
}
