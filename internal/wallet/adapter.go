package wallet

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/models"
)

// New returns an [Adapter] for provider. tag is recorded as
// [models.WalletAccount.Provider]. A nil provider yields an absent adapter.
// A nil addresses store disables remembering the granted address.
func New(provider Provider, tag string, addresses AddressStore, log *logger.Logger) Adapter {
	if provider == nil {
		return absentAdapter{}
	}
	if addresses == nil {
		addresses = &memoryAddressStore{}
	}
	return &presentAdapter{
		provider:  provider,
		tag:       tag,
		addresses: addresses,
		logger:    log,
	}
}

type absentAdapter struct{}

func (absentAdapter) Available() bool { return false }

func (absentAdapter) Connect(context.Context) (models.WalletAccount, error) {
	return models.WalletAccount{}, ErrWalletUnavailable
}

func (absentAdapter) Forget(context.Context) {}

func (absentAdapter) SignTransaction(context.Context, string, string) (string, error) {
	return "", ErrWalletUnavailable
}

type presentAdapter struct {
	provider  Provider
	tag       string
	addresses AddressStore

	logger *logger.Logger
}

func (a *presentAdapter) Available() bool { return true }

// Connect resolves the address in this order:
//  1. the provider's current public key, when it exposes one;
//  2. the provider's connection check: a connected provider reuses the
//     remembered address, a disconnected one is prompted;
//  3. an access prompt.
func (a *presentAdapter) Connect(ctx context.Context) (models.WalletAccount, error) {
	address, err := a.resolve(ctx)
	if err != nil {
		return models.WalletAccount{}, err
	}

	a.addresses.SaveWalletAddress(ctx, address)
	return models.WalletAccount{Address: address, Provider: a.tag}, nil
}

func (a *presentAdapter) resolve(ctx context.Context) (string, error) {
	if getter, ok := a.provider.(PublicKeyGetter); ok {
		key, err := getter.PublicKey(ctx)
		if err != nil {
			a.logger.Debug().Err(err).Str("func", "wallet.resolve").Msg("public key lookup failed, falling back")
		}
		if key = strings.TrimSpace(key); err == nil && key != "" {
			return key, nil
		}
	}

	if checker, ok := a.provider.(ConnectionChecker); ok {
		connected, err := checker.IsConnected(ctx)
		if err != nil {
			a.logger.Debug().Err(err).Str("func", "wallet.resolve").Msg("connection check failed, prompting")
		}
		if err == nil && connected {
			if remembered := strings.TrimSpace(a.addresses.LoadWalletAddress(ctx)); remembered != "" {
				return remembered, nil
			}
		}
	}

	return a.requestAccess(ctx)
}

func (a *presentAdapter) requestAccess(ctx context.Context) (string, error) {
	res, err := a.provider.RequestAccess(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %v", ErrWalletAccessDenied, err)
	}

	address := strings.TrimSpace(res.PublicKey)
	if address == "" {
		return "", ErrWalletAccessDenied
	}
	return address, nil
}

func (a *presentAdapter) Forget(ctx context.Context) {
	a.addresses.SaveWalletAddress(ctx, "")
}

func (a *presentAdapter) SignTransaction(ctx context.Context, xdr, networkPassphrase string) (string, error) {
	signer, ok := a.provider.(TransactionSigner)
	if !ok {
		return "", ErrSigningUnsupported
	}
	return signer.SignTransaction(ctx, xdr, networkPassphrase)
}

// memoryAddressStore is used when no durable store is wired.
type memoryAddressStore struct {
	mu      sync.Mutex
	address string
}

func (m *memoryAddressStore) LoadWalletAddress(context.Context) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.address
}

func (m *memoryAddressStore) SaveWalletAddress(_ context.Context, address string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.address = address
}
