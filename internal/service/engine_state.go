package service

import (
	"slices"

	"github.com/MKhiriev/go-id-wallet/models"
)

// State reports the lifecycle state:
// disconnected, connecting, connected without identity, or hydrated.
func (e *Engine) State() models.SessionState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stateLocked()
}

func (e *Engine) stateLocked() models.SessionState {
	switch {
	case e.st.connecting > 0:
		return models.StateConnecting
	case e.st.identity != nil:
		return models.StateHydrated
	case e.st.wallet != nil:
		return models.StateConnectedNoIdentity
	default:
		return models.StateDisconnected
	}
}

// Loading reports whether a hydrate is in flight.
func (e *Engine) Loading() bool {
	return e.loading.Load() > 0
}

// Snapshot returns a deep copy of everything the engine owns.
func (e *Engine) Snapshot() models.Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return models.Snapshot{
		State:           e.stateLocked(),
		Loading:         e.Loading(),
		Wallet:          clonePtr(e.st.wallet),
		Session:         clonePtr(e.st.session),
		Identity:        clonePtr(e.st.identity),
		Documents:       cloneDocuments(e.st.documents),
		SharedDocuments: cloneDocuments(e.st.shared),
		SharedWithMe:    nonNilClone(e.st.sharedWithMe),
		Permissions:     nonNilClone(e.st.permissions),
		History:         e.history.Entries(),
	}
}

// Wallet returns the bound wallet account, if any.
func (e *Engine) Wallet() (models.WalletAccount, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.st.wallet == nil {
		return models.WalletAccount{}, false
	}
	return *e.st.wallet, true
}

// Identity returns the hydrated identity, if any.
func (e *Engine) Identity() (models.IdentityRecord, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.st.identity == nil {
		return models.IdentityRecord{}, false
	}
	return *e.st.identity, true
}

// History returns the activity log, newest first.
func (e *Engine) History() []models.HistoryEntry {
	return e.history.Entries()
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func nonNilClone[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return slices.Clone(items)
}

func cloneDocuments(docs []models.DocumentRecord) []models.DocumentRecord {
	out := make([]models.DocumentRecord, len(docs))
	for i, d := range docs {
		out[i] = cloneDocument(d)
	}
	return out
}

func cloneDocument(d models.DocumentRecord) models.DocumentRecord {
	d.SharedWith = nonNilClone(d.SharedWith)
	if d.Metadata.ExpiryDate != nil {
		d.Metadata.ExpiryDate = clonePtr(d.Metadata.ExpiryDate)
	}
	return d
}
