package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-id-wallet/models"
)

// NopSessionStore is the session store used without durable storage. Every
// read returns nil or "" and every write is dropped.
type NopSessionStore struct{}

func (NopSessionStore) Load(context.Context) *models.AuthSession {
	return nil
}

func (NopSessionStore) Save(context.Context, *models.AuthSession) {}

func (NopSessionStore) LoadWalletAddress(context.Context) string {
	return ""
}

func (NopSessionStore) SaveWalletAddress(context.Context, string) {}

// MemoryIdentityMetadataStore keeps enrichment for the lifetime of the
// process. It backs headless runs where no DSN is configured.
type MemoryIdentityMetadataStore struct {
	mu    sync.RWMutex
	items map[string]models.IdentityMetadata
}

func NewMemoryIdentityMetadataStore() *MemoryIdentityMetadataStore {
	return &MemoryIdentityMetadataStore{items: make(map[string]models.IdentityMetadata)}
}

func (m *MemoryIdentityMetadataStore) Get(_ context.Context, address string) (models.IdentityMetadata, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	meta, ok := m.items[address]
	return meta, ok
}

func (m *MemoryIdentityMetadataStore) Put(_ context.Context, address string, meta models.IdentityMetadata) error {
	if address == "" {
		return ErrEmptyAddress
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[address] = meta
	return nil
}

func (m *MemoryIdentityMetadataStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.items)
	return nil
}
