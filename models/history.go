// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TimestampLayout is the ISO-8601 layout (UTC, millisecond precision) shared
// by history timestamps and document metadata createdAt.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// HistoryKind classifies a history entry.
type HistoryKind string

const (
	HistoryIdentity HistoryKind = "identity"
	HistoryDocument HistoryKind = "document"
	HistoryAccess   HistoryKind = "access"
)

// HistoryEntry is one synchronization event. Entries are never mutated after
// they are appended.
type HistoryEntry struct {
	ID          string      `json:"id"`
	Kind        HistoryKind `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`

	// Timestamp is ISO-8601 UTC with millisecond precision.
	Timestamp string `json:"timestamp"`

	TxRef string `json:"txHash,omitempty"`
	Actor string `json:"actor,omitempty"`
}
