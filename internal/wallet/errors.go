// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package wallet

import "errors"

var (
	// ErrWalletUnavailable means no wallet provider is installed or enabled.
	ErrWalletUnavailable = errors.New("wallet provider is not available")
	// ErrWalletAccessDenied means the user declined the access prompt or the
	// provider returned no address.
	ErrWalletAccessDenied = errors.New("wallet access denied")
	// ErrSigningUnsupported means the provider has no signing capability.
	ErrSigningUnsupported = errors.New("wallet provider cannot sign transactions")
)
