// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the synchronization engine of the identity
// wallet client.
//
// The [Engine] keeps four sources of truth consistent: the wallet provider,
// the identity/document backend, the in-memory activity log and the durable
// session state. Mutating operations (register, create, share, revoke) run
// their backend call first and only then touch local state; a failed call
// leaves local state untouched and its error is returned as-is. Reads done
// while hydrating degrade to empty results instead of failing.
//
// Engine state is guarded by a read-write mutex that is never held across
// network calls. Mutations on the same document are serialized. Every
// disconnect bumps a generation counter, and a hydrate that started under an
// older generation discards its results.
package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-id-wallet/internal/adapter"
	"github.com/MKhiriev/go-id-wallet/internal/history"
	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/internal/store"
	"github.com/MKhiriev/go-id-wallet/internal/wallet"
	"github.com/MKhiriev/go-id-wallet/models"
)

const defaultFanOutLimit = 4

// Dependencies are the collaborators an [Engine] needs. Backend and Wallet
// are required; nil stores fall back to process-lifetime implementations.
type Dependencies struct {
	Backend          adapter.BackendAdapter
	Wallet           wallet.Adapter
	Sessions         store.SessionStore
	IdentityMetadata store.IdentityMetadataStore
	Logger           *logger.Logger
}

// Engine is the synchronization engine. Construct it with [New]; the zero
// value is not usable.
type Engine struct {
	backend  adapter.BackendAdapter
	wallet   wallet.Adapter
	sessions store.SessionStore
	metadata store.IdentityMetadataStore
	history  *history.Ledger

	reconciler Reconciler
	notify     func(models.Notice)
	now        func() time.Time
	fanOut     int
	passphrase string

	mu         sync.RWMutex
	st         engineState
	generation uint64

	loading  atomic.Int32
	docLocks *keyedMutex

	logger *logger.Logger
}

type engineState struct {
	connecting int

	wallet   *models.WalletAccount
	session  *models.AuthSession
	identity *models.IdentityRecord

	documents    []models.DocumentRecord
	shared       []models.DocumentRecord
	sharedWithMe []int64
	permissions  []models.PermissionRecord
}

// Option customizes an [Engine].
type Option func(*Engine)

// WithClock replaces time.Now for document timestamps, fallback grant times
// and history entries.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithReconciler selects how local state is reconciled after a mutation.
// The default is [FullReloadReconciler].
func WithReconciler(r Reconciler) Option {
	return func(e *Engine) {
		if r != nil {
			e.reconciler = r
		}
	}
}

// WithNotifier receives informational notices. It is called without engine
// locks held and must not block for long.
func WithNotifier(fn func(models.Notice)) Option {
	return func(e *Engine) {
		if fn != nil {
			e.notify = fn
		}
	}
}

// WithFanOutLimit bounds concurrent permission fetches during hydrate.
func WithFanOutLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.fanOut = n
		}
	}
}

// WithNetworkPassphrase sets the passphrase passed to the wallet when
// signing transactions.
func WithNetworkPassphrase(passphrase string) Option {
	return func(e *Engine) { e.passphrase = passphrase }
}

// New builds an engine over deps.
func New(deps Dependencies, opts ...Option) *Engine {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	e := &Engine{
		backend:    deps.Backend,
		wallet:     deps.Wallet,
		sessions:   deps.Sessions,
		metadata:   deps.IdentityMetadata,
		reconciler: FullReloadReconciler{},
		notify:     func(models.Notice) {},
		now:        time.Now,
		fanOut:     defaultFanOutLimit,
		docLocks:   newKeyedMutex(),
		logger:     log,
	}
	if e.wallet == nil {
		e.wallet = wallet.New(nil, "", nil, log)
	}
	if e.sessions == nil {
		e.sessions = store.NopSessionStore{}
	}
	if e.metadata == nil {
		e.metadata = store.NewMemoryIdentityMetadataStore()
	}

	for _, opt := range opts {
		opt(e)
	}
	e.history = history.New(history.WithClock(e.now))

	return e
}
