// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionState is the engine lifecycle state.
type SessionState string

const (
	StateDisconnected        SessionState = "disconnected"
	StateConnecting          SessionState = "connecting"
	StateConnectedNoIdentity SessionState = "connected_no_identity"
	StateHydrated            SessionState = "hydrated"
)

// Snapshot is a point-in-time copy of everything the engine owns. Callers may
// keep and mutate it freely.
type Snapshot struct {
	State   SessionState
	Loading bool

	Wallet   *WalletAccount
	Session  *AuthSession
	Identity *IdentityRecord

	Documents       []DocumentRecord
	SharedDocuments []DocumentRecord

	// SharedWithMe holds the ids of documents other owners shared with us.
	SharedWithMe []int64

	Permissions []PermissionRecord
	History     []HistoryEntry
}

// NoticeLevel grades a [Notice].
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
)

// Notice is an informational signal raised by the engine that is not an error,
// such as a refresh with nothing connected or a degraded read.
type Notice struct {
	Level   NoticeLevel
	Message string
}
