package store

import (
	"context"

	"github.com/MKhiriev/go-id-wallet/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// KVRepository is the low-level key/value table behind durable client state.
// Get returns (nil, nil) for a missing key.
type KVRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// SessionStore keeps the auth session and the last wallet address across
// restarts. Reads never fail: missing, corrupted or expired data reads as
// empty. Writes are fire-and-forget; failures are logged and never reach
// the caller.
type SessionStore interface {
	// Load returns the stored session or nil.
	Load(ctx context.Context) *models.AuthSession
	// Save stores session; nil clears it.
	Save(ctx context.Context, session *models.AuthSession)
	// LoadWalletAddress returns the remembered address or "".
	LoadWalletAddress(ctx context.Context) string
	// SaveWalletAddress remembers address; "" clears it.
	SaveWalletAddress(ctx context.Context, address string)
}

// IdentityMetadataStore keeps the email/rfc enrichment per wallet address.
type IdentityMetadataStore interface {
	// Get returns the enrichment for address. ok is false when nothing is
	// stored or the read failed.
	Get(ctx context.Context, address string) (meta models.IdentityMetadata, ok bool)
	// Put stores meta for address, replacing any previous value.
	Put(ctx context.Context, address string, meta models.IdentityMetadata) error
	// Clear removes every stored enrichment.
	Clear(ctx context.Context) error
}
