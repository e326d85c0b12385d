// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// IdentityRecord is the on-record association between a wallet address and a
// display name. Email and RFC are not stored by the backend identity resource;
// they come from the locally persisted [IdentityMetadata] for the address.
type IdentityRecord struct {
	ID            string    `json:"id"`
	PublicAddress string    `json:"publicKey"`
	DisplayName   string    `json:"fullName"`
	RFC           string    `json:"rfc"`
	Email         string    `json:"email"`
	Verified      bool      `json:"verified"`
	CreatedAt     time.Time `json:"createdAt"`

	// Transaction is the ledger reference returned at registration time, if any.
	Transaction string `json:"transaction,omitempty"`
}

// IdentityMetadata is the local enrichment kept per address.
type IdentityMetadata struct {
	Email string `json:"email"`
	RFC   string `json:"rfc"`
}

// IsZero reports whether m carries no enrichment at all.
func (m IdentityMetadata) IsZero() bool {
	return m.Email == "" && m.RFC == ""
}
