// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package wallet adapts an external wallet provider (a browser extension, a
// hardware signer, a configured test key) to the connect flow of the engine.
//
// Providers are described by capabilities. Only [Provider] is required; the
// adapter probes for [PublicKeyGetter], [ConnectionChecker] and
// [TransactionSigner] with type assertions and uses what is there.
//
// A missing provider is modelled as an absent adapter (see [New]) whose
// Connect always fails with [ErrWalletUnavailable].
package wallet

import (
	"context"

	"github.com/MKhiriev/go-id-wallet/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/wallet_mock.go -package=mock

// AccessResult is the provider's answer to an access prompt.
type AccessResult struct {
	// PublicKey is the granted address. Empty means access was not granted.
	PublicKey string
}

// Provider is the minimal wallet capability: prompt the user for access.
type Provider interface {
	RequestAccess(ctx context.Context) (AccessResult, error)
}

// PublicKeyGetter is implemented by providers that expose the currently
// selected address without prompting.
type PublicKeyGetter interface {
	PublicKey(ctx context.Context) (string, error)
}

// ConnectionChecker is implemented by providers that can tell whether this
// client already holds a grant.
type ConnectionChecker interface {
	IsConnected(ctx context.Context) (bool, error)
}

// TransactionSigner is implemented by providers that sign transaction
// envelopes.
type TransactionSigner interface {
	SignTransaction(ctx context.Context, xdr, networkPassphrase string) (string, error)
}

// AddressStore keeps the last granted address across restarts.
type AddressStore interface {
	LoadWalletAddress(ctx context.Context) string
	SaveWalletAddress(ctx context.Context, address string)
}

// Adapter is what the engine talks to.
type Adapter interface {
	// Available reports whether a provider is installed.
	Available() bool

	// Connect resolves the wallet address, prompting only when needed.
	// Fails with [ErrWalletUnavailable] or [ErrWalletAccessDenied].
	Connect(ctx context.Context) (models.WalletAccount, error)

	// Forget drops the remembered address.
	Forget(ctx context.Context)

	// SignTransaction delegates to the provider. Fails with
	// [ErrSigningUnsupported] when the provider cannot sign.
	SignTransaction(ctx context.Context, xdr, networkPassphrase string) (string, error)
}
