// Package backendtest provides an in-process identity/document backend for
// integration tests. It serves the same REST surface as the real backend,
// issues signed bearer tokens and can be told to fail individual operations.
package backendtest

import (
	"net/http/httptest"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-id-wallet/internal/utils"
	"github.com/MKhiriev/go-id-wallet/models"
)

const (
	tokenIssuer   = "backendtest"
	tokenSignKey  = "backendtest-sign-key"
	tokenDuration = time.Hour
)

// Op names a backend operation for failure injection.
type Op string

const (
	OpLogin            Op = "login"
	OpRegister         Op = "register"
	OpRegisterIdentity Op = "register-identity"
	OpGetIdentity      Op = "get-identity"
	OpListOwned        Op = "list-owned"
	OpListShared       Op = "list-shared"
	OpCreateDocument   Op = "create-document"
	OpShare            Op = "share"
	OpRevoke           Op = "revoke"
	OpListPermissions  Op = "list-permissions"
)

type account struct {
	password  string
	fullName  string
	publicKey string
}

// Backend is the fake backend state. All methods are safe for concurrent use.
type Backend struct {
	mu sync.Mutex

	accounts    map[string]account
	identities  map[string]models.IdentityDTO
	documents   []models.DocumentDTO
	permissions map[int64][]models.PermissionDTO
	nextID      int64

	failures map[Op]int
	calls    map[Op]int

	now func() time.Time

	server *httptest.Server
}

// Option customizes a [Backend].
type Option func(*Backend)

// WithClock replaces time.Now for created/granted timestamps.
func WithClock(now func() time.Time) Option {
	return func(b *Backend) { b.now = now }
}

// New builds a backend without starting a server.
func New(opts ...Option) *Backend {
	b := &Backend{
		accounts:    make(map[string]account),
		identities:  make(map[string]models.IdentityDTO),
		permissions: make(map[int64][]models.PermissionDTO),
		nextID:      1,
		failures:    make(map[Op]int),
		calls:       make(map[Op]int),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Start builds a backend, serves it over httptest and closes the server when
// the test ends.
func Start(t testing.TB, opts ...Option) *Backend {
	t.Helper()

	b := New(opts...)
	b.server = httptest.NewServer(b.Router())
	t.Cleanup(b.server.Close)

	return b
}

// URL returns the base URL of a started backend.
func (b *Backend) URL() string {
	if b.server == nil {
		return ""
	}
	return b.server.URL
}

// Fail makes every following call of op answer with status until [Backend.Recover].
func (b *Backend) Fail(op Op, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[op] = status
}

// Recover clears an injected failure.
func (b *Backend) Recover(op Op) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.failures, op)
}

// Calls returns how many times op was requested, failed calls included.
func (b *Backend) Calls(op Op) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[op]
}

// SeedAccount creates an account without going through /auth/register.
func (b *Backend) SeedAccount(email, password, fullName, publicKey string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.accounts[email] = account{password: password, fullName: fullName, publicKey: publicKey}
}

// SeedIdentity registers an identity directly.
func (b *Backend) SeedIdentity(publicKey, fullName string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.identities[publicKey] = models.IdentityDTO{PublicKey: publicKey, FullName: fullName, CreatedAt: b.now().UTC()}
}

// IssueToken signs a bearer token for email, as login would.
func (b *Backend) IssueToken(email string) (string, error) {
	return utils.GenerateJWTToken(tokenIssuer, email, tokenDuration, tokenSignKey)
}

// Documents returns the documents owned by owner, in creation order.
func (b *Backend) Documents(owner string) []models.DocumentDTO {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ownedLocked(owner)
}

// Permissions returns the active grants of a document.
func (b *Backend) Permissions(documentID int64) []models.PermissionDTO {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.permissions[documentID])
}

// track counts a call of op and reports an injected failure status, or 0.
func (b *Backend) track(op Op) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls[op]++
	return b.failures[op]
}

func (b *Backend) ownedLocked(owner string) []models.DocumentDTO {
	out := []models.DocumentDTO{}
	for _, d := range b.documents {
		if d.OwnerPublicKey == owner {
			out = append(out, b.withSharesLocked(d))
		}
	}
	return out
}

func (b *Backend) withSharesLocked(d models.DocumentDTO) models.DocumentDTO {
	d.SharedWith = []string{}
	for _, p := range b.permissions[d.ID] {
		d.SharedWith = append(d.SharedWith, p.TargetPublicKey)
	}
	return d
}

func (b *Backend) findLocked(id int64) (models.DocumentDTO, bool) {
	for _, d := range b.documents {
		if d.ID == id {
			return d, true
		}
	}
	return models.DocumentDTO{}, false
}
