package service

import "errors"

// ErrPrecondition wraps a missing-precondition error. Such errors are raised
// before any network call and are recovered by performing the missing step.
// Match the specific cause with [ErrWalletRequired], [ErrIdentityRequired]
// or [ErrSessionRequired].
var ErrPrecondition = errors.New("precondition failed")

var (
	ErrWalletRequired   = errors.New("a connected wallet is required")
	ErrIdentityRequired = errors.New("a registered identity is required")
	ErrSessionRequired  = errors.New("an authenticated session is required")
)

var (
	// ErrInvalidInput is returned for blank required arguments.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptySessionToken is returned when login or signup succeeds without
	// a token, which would leave an unusable session.
	ErrEmptySessionToken = errors.New("backend returned an empty session token")

	// ErrSessionReset is returned when a disconnect or logout happened while
	// the operation was in flight; its results were discarded.
	ErrSessionReset = errors.New("session was reset while the operation was in flight")
)
