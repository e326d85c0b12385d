package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-id-wallet/models"
)

// Login opens a session with email and password. The session is stored
// durably and, when a wallet address is known, the engine re-hydrates.
func (e *Engine) Login(ctx context.Context, email, password string) (models.AuthSession, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.AuthSession{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	resp, err := e.backend.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		e.logger.Warn().Err(err).Str("func", "Engine.Login").Msg("login failed")
		return models.AuthSession{}, err
	}

	return e.openSession(ctx, email, resp)
}

// SignUp creates an account bound to the connected wallet, connecting one
// first when needed, and opens a session for it.
func (e *Engine) SignUp(ctx context.Context, email, password, fullName string) (models.AuthSession, error) {
	email = strings.TrimSpace(email)
	fullName = strings.TrimSpace(fullName)
	if email == "" || password == "" || fullName == "" {
		return models.AuthSession{}, fmt.Errorf("%w: email, password and full name are required", ErrInvalidInput)
	}

	acc, err := e.EnsureWallet(ctx)
	if err != nil {
		return models.AuthSession{}, err
	}

	resp, err := e.backend.Register(ctx, models.SignUpRequest{
		Email:     email,
		Password:  password,
		FullName:  fullName,
		PublicKey: acc.Address,
	})
	if err != nil {
		e.logger.Warn().Err(err).Str("func", "Engine.SignUp").Msg("sign up failed")
		return models.AuthSession{}, err
	}

	return e.openSession(ctx, email, resp)
}

func (e *Engine) openSession(ctx context.Context, email string, resp models.AuthResponse) (models.AuthSession, error) {
	if strings.TrimSpace(resp.Token) == "" {
		return models.AuthSession{}, ErrEmptySessionToken
	}

	session := models.AuthSession{
		Token:         resp.Token,
		Email:         email,
		DisplayName:   resp.FullName,
		PublicAddress: resp.PublicKey,
	}
	e.sessions.Save(ctx, &session)

	e.mu.Lock()
	e.st.session = clonePtr(&session)
	var address string
	if e.st.wallet != nil {
		address = e.st.wallet.Address
	}
	e.mu.Unlock()

	e.logger.Info().Str("func", "Engine.openSession").Str("email", email).Msg("session opened")

	if address != "" {
		if _, err := e.Hydrate(ctx, address); err != nil && ctx.Err() != nil {
			return session, ctx.Err()
		}
	}
	return session, nil
}

// Logout drops the session. The wallet and identity stay bound, but the
// token-gated collections are emptied.
func (e *Engine) Logout(ctx context.Context) {
	e.sessions.Save(ctx, nil)

	e.mu.Lock()
	e.generation++
	e.st.session = nil
	e.st.documents = []models.DocumentRecord{}
	e.st.shared = []models.DocumentRecord{}
	e.st.sharedWithMe = []int64{}
	e.st.permissions = []models.PermissionRecord{}
	e.mu.Unlock()

	e.logger.Info().Str("func", "Engine.Logout").Msg("session dropped")
}

// writeScope is what a write captured before its backend call.
type writeScope struct {
	identity   models.IdentityRecord
	session    models.AuthSession
	generation uint64
}

// preconditions returns the identity and session a write needs. Identity is
// checked before session.
func (e *Engine) preconditions() (writeScope, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.st.identity == nil {
		return writeScope{}, fmt.Errorf("%w: %w", ErrPrecondition, ErrIdentityRequired)
	}
	if !e.st.session.HasToken() {
		return writeScope{}, fmt.Errorf("%w: %w", ErrPrecondition, ErrSessionRequired)
	}
	return writeScope{
		identity:   *e.st.identity,
		session:    *e.st.session,
		generation: e.generation,
	}, nil
}
