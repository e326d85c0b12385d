// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// WalletAccount is the wallet bound to the current session. It is immutable:
// a reconnect replaces it wholesale and a disconnect drops it.
type WalletAccount struct {
	// Address is the public key reported by the wallet provider.
	Address string `json:"address"`

	// Provider tags where the account came from (e.g. "static", "restored").
	Provider string `json:"provider"`
}

// IsZero reports whether no wallet is bound.
func (w WalletAccount) IsZero() bool {
	return w.Address == ""
}
