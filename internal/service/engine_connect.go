package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-id-wallet/models"
)

// ProviderRestored tags a wallet account rebuilt from the durable store.
const ProviderRestored = "restored"

// Connect asks the wallet for an address, binds it and hydrates. Wallet
// errors are returned as-is and leave the engine untouched. Hydrate itself
// never fails on backend errors, so the returned error is either a wallet
// error or a context error.
func (e *Engine) Connect(ctx context.Context) (models.WalletAccount, error) {
	e.mu.Lock()
	e.st.connecting++
	generation := e.generation
	e.mu.Unlock()

	acc, err := e.wallet.Connect(ctx)

	e.mu.Lock()
	e.st.connecting--
	if err != nil {
		e.mu.Unlock()
		e.logger.Warn().Err(err).Str("func", "Engine.Connect").Msg("wallet connect failed")
		return models.WalletAccount{}, err
	}
	if e.generation != generation {
		e.mu.Unlock()
		return models.WalletAccount{}, ErrSessionReset
	}
	e.st.wallet = &acc
	e.mu.Unlock()

	e.logger.Info().Str("func", "Engine.Connect").Str("address", acc.Address).Msg("wallet connected")

	if _, err := e.Hydrate(ctx, acc.Address); err != nil && ctx.Err() != nil {
		return acc, ctx.Err()
	}
	return acc, nil
}

// EnsureWallet returns the bound wallet or connects one.
func (e *Engine) EnsureWallet(ctx context.Context) (models.WalletAccount, error) {
	if acc, ok := e.Wallet(); ok {
		return acc, nil
	}
	return e.Connect(ctx)
}

// Disconnect forgets the wallet and the session and clears every collection
// and the history. It performs no network I/O. Locally stored identity
// enrichment is kept so a later reconnect can show it again.
func (e *Engine) Disconnect(ctx context.Context) {
	e.wallet.Forget(ctx)
	e.sessions.Save(ctx, nil)

	e.mu.Lock()
	e.generation++
	e.st = engineState{connecting: e.st.connecting}
	e.history.Reset()
	e.mu.Unlock()

	e.logger.Info().Str("func", "Engine.Disconnect").Msg("session cleared")
}

// Restore rebuilds the session and wallet from the durable store. A stored
// wallet address triggers a hydrate.
func (e *Engine) Restore(ctx context.Context) (*models.IdentityRecord, error) {
	session := e.sessions.Load(ctx)
	address := e.sessions.LoadWalletAddress(ctx)

	e.mu.Lock()
	if session != nil {
		e.st.session = session
	}
	if address != "" && e.st.wallet == nil {
		e.st.wallet = &models.WalletAccount{Address: address, Provider: ProviderRestored}
	}
	e.mu.Unlock()

	if address == "" {
		e.logger.Debug().Str("func", "Engine.Restore").Bool("session", session != nil).Msg("no wallet address stored")
		return nil, nil
	}

	return e.Hydrate(ctx, address)
}

// Refresh re-hydrates the current identity or wallet. With nothing connected
// it only raises an informational notice.
func (e *Engine) Refresh(ctx context.Context) (*models.IdentityRecord, error) {
	e.mu.RLock()
	var address string
	switch {
	case e.st.identity != nil:
		address = e.st.identity.PublicAddress
	case e.st.wallet != nil:
		address = e.st.wallet.Address
	}
	current := clonePtr(e.st.identity)
	e.mu.RUnlock()

	if address == "" {
		e.logger.Info().Str("func", "Engine.Refresh").Msg("nothing connected to refresh")
		e.notify(models.Notice{Level: models.NoticeInfo, Message: "connect a wallet to refresh"})
		return current, nil
	}

	return e.Hydrate(ctx, address)
}

// SignTransaction asks the bound wallet to sign xdr with the configured
// network passphrase.
func (e *Engine) SignTransaction(ctx context.Context, xdr string) (string, error) {
	if _, ok := e.Wallet(); !ok {
		return "", fmt.Errorf("%w: %w", ErrPrecondition, ErrWalletRequired)
	}
	return e.wallet.SignTransaction(ctx, xdr, e.passphrase)
}
