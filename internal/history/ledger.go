// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package history keeps the in-memory activity log of the engine, newest
// entry first. The log is not persisted.
package history

import (
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-id-wallet/internal/utils"
	"github.com/MKhiriev/go-id-wallet/models"
)

// Ledger is an append-only, newest-first list of [models.HistoryEntry].
// It is safe for concurrent use.
type Ledger struct {
	mu      sync.RWMutex
	entries []models.HistoryEntry

	now func() time.Time
	ids *utils.UUIDGenerator
}

// Option configures a [Ledger].
type Option func(*Ledger)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

func New(opts ...Option) *Ledger {
	l := &Ledger{now: time.Now, ids: utils.NewUUIDGenerator()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// EntryOption sets optional fields of an appended entry.
type EntryOption func(*models.HistoryEntry)

// WithTxRef records the ledger transaction reference.
func WithTxRef(ref string) EntryOption {
	return func(e *models.HistoryEntry) { e.TxRef = ref }
}

// WithActor records who performed the action.
func WithActor(actor string) EntryOption {
	return func(e *models.HistoryEntry) { e.Actor = actor }
}

// Append prepends a new entry and returns it. Entries are not deduplicated.
func (l *Ledger) Append(kind models.HistoryKind, title, description string, opts ...EntryOption) models.HistoryEntry {
	entry := l.Entry(kind, title, description, opts...)
	l.Add(entry)
	return entry
}

// Entry builds an entry stamped with the ledger clock without adding it.
// The id is "<kind>-<unix millis>-<8 random hex>".
func (l *Ledger) Entry(kind models.HistoryKind, title, description string, opts ...EntryOption) models.HistoryEntry {
	at := l.now().UTC()
	entry := models.HistoryEntry{
		ID:          fmt.Sprintf("%s-%d-%s", kind, at.UnixMilli(), l.ids.Short()),
		Kind:        kind,
		Title:       title,
		Description: description,
		Timestamp:   at.Format(models.TimestampLayout),
	}
	for _, opt := range opts {
		opt(&entry)
	}
	return entry
}

// Add prepends a prebuilt entry.
func (l *Ledger) Add(entry models.HistoryEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append([]models.HistoryEntry{entry}, l.entries...)
}

// Entries returns a copy of the log, newest first.
func (l *Ledger) Entries() []models.HistoryEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.HistoryEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Reset drops every entry.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}
