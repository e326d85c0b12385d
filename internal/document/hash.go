// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/MKhiriev/go-id-wallet/models"
)

// HashVersion identifies the canonical form used by [Hash].
const HashVersion = 1

// Hash returns the hex SHA-256 digest of (owner, m) in canonical form: a JSON
// array with the fixed order address, type, number, issueDate, expiryDate
// (null when absent), createdAt.
func Hash(owner string, m models.DocumentMetadata) string {
	return hex.EncodeToString(digest(canonical(owner, m)))
}

func canonical(owner string, m models.DocumentMetadata) []byte {
	var expiry any
	if m.ExpiryDate != nil {
		expiry = *m.ExpiryDate
	}

	fields := []any{
		strings.TrimSpace(owner),
		m.Type,
		m.Number,
		m.IssueDate,
		expiry,
		m.CreatedAt,
	}

	// a slice of strings and nil cannot fail to marshal
	payload, _ := json.Marshal(fields)
	return payload
}

func digest(payload []byte) []byte {
	sum := sha256.Sum256(payload)
	return sum[:]
}

// Short renders a hash for human display: the first eight and last six
// characters joined by an ellipsis. Short inputs are returned unchanged.
func Short(hash string) string {
	if len(hash) <= 16 {
		return hash
	}
	return hash[:8] + "..." + hash[len(hash)-6:]
}
