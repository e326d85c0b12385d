package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-id-wallet/internal/adapter"
	"github.com/MKhiriev/go-id-wallet/models"
)

// hydration is the result of one read pass, built without engine locks held.
type hydration struct {
	identity    *models.IdentityRecord
	documents   []models.DocumentRecord
	shared      []models.DocumentRecord
	permissions []models.PermissionRecord
	notices     []models.Notice
}

// Hydrate reloads identity, owned documents, shared documents and their
// grants for address. Every read degrades to empty on failure. Without a
// session token only the identity is loaded and the collections are emptied.
//
// The result is discarded with [ErrSessionReset] when the engine was
// disconnected or logged out while the reads were in flight.
func (e *Engine) Hydrate(ctx context.Context, address string) (*models.IdentityRecord, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, fmt.Errorf("%w: %w", ErrPrecondition, ErrWalletRequired)
	}

	e.loading.Add(1)
	defer e.loading.Add(-1)

	e.mu.RLock()
	generation := e.generation
	session := clonePtr(e.st.session)
	previous := clonePtr(e.st.identity)
	e.mu.RUnlock()

	h := e.read(ctx, address, session, previous)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.mu.Lock()
	if e.generation != generation {
		e.mu.Unlock()
		e.logger.Debug().Str("func", "Engine.Hydrate").Str("address", address).Msg("discarding stale hydrate")
		return nil, ErrSessionReset
	}
	e.st.identity = h.identity
	e.st.documents = h.documents
	e.st.shared = h.shared
	e.st.sharedWithMe = sharedIDs(h.shared)
	e.st.permissions = h.permissions
	e.mu.Unlock()

	for _, n := range h.notices {
		e.notify(n)
	}

	return clonePtr(h.identity), nil
}

func (e *Engine) read(ctx context.Context, address string, session *models.AuthSession, previous *models.IdentityRecord) hydration {
	var h hydration
	token := session.BearerToken()

	h.identity = e.fetchIdentity(ctx, token, address, previous, &h.notices)

	h.documents = []models.DocumentRecord{}
	h.shared = []models.DocumentRecord{}
	h.permissions = []models.PermissionRecord{}
	if token == "" {
		return h
	}

	var g errgroup.Group
	g.Go(func() error {
		dtos, err := e.backend.ListOwnedDocuments(ctx, token, address)
		if err != nil {
			e.softFail("ListOwnedDocuments", address, err)
			return nil
		}
		h.documents = documentsFromDTO(dtos)
		return nil
	})
	g.Go(func() error {
		dtos, err := e.backend.ListSharedDocuments(ctx, token, address)
		if err != nil {
			e.softFail("ListSharedDocuments", address, err)
			return nil
		}
		h.shared = documentsFromDTO(dtos)
		return nil
	})
	_ = g.Wait()

	h.permissions = e.fetchPermissions(ctx, token, address, h.documents)

	return h
}

func (e *Engine) fetchIdentity(ctx context.Context, token, address string, previous *models.IdentityRecord, notices *[]models.Notice) *models.IdentityRecord {
	dto, err := e.backend.GetIdentity(ctx, token, address)
	if err != nil {
		if !errors.Is(err, adapter.ErrNotFound) {
			e.softFail("GetIdentity", address, err)
			*notices = append(*notices, models.Notice{
				Level:   models.NoticeWarning,
				Message: "identity could not be loaded: " + err.Error(),
			})
		}
		return nil
	}

	identity := identityFromDTO(dto)
	if identity.PublicAddress == "" {
		identity.ID = address
		identity.PublicAddress = address
	}

	if meta, ok := e.metadata.Get(ctx, address); ok {
		identity.Email = meta.Email
		identity.RFC = meta.RFC
	} else if previous != nil && previous.PublicAddress == identity.PublicAddress {
		identity.Email = previous.Email
		identity.RFC = previous.RFC
	}

	return &identity
}

// fetchPermissions loads grants for every owned document with at most
// e.fanOut requests in flight and flattens them in document order.
func (e *Engine) fetchPermissions(ctx context.Context, token, address string, docs []models.DocumentRecord) []models.PermissionRecord {
	perDoc := make([][]models.PermissionRecord, len(docs))

	var g errgroup.Group
	g.SetLimit(e.fanOut)
	for i, doc := range docs {
		g.Go(func() error {
			dtos, err := e.backend.ListPermissions(ctx, token, doc.ID, address)
			if err != nil {
				e.softFail("ListPermissions", address, err)
				return nil
			}
			perms := make([]models.PermissionRecord, 0, len(dtos))
			for _, dto := range dtos {
				perms = append(perms, permissionFromDTO(dto))
			}
			perDoc[i] = perms
			return nil
		})
	}
	_ = g.Wait()

	var flat []models.PermissionRecord
	for _, perms := range perDoc {
		flat = append(flat, perms...)
	}
	return dedupePermissions(flat)
}

// RefreshPermissions reloads the grants of one owned document and replaces
// the local records for it.
func (e *Engine) RefreshPermissions(ctx context.Context, address string, documentID int64) error {
	e.mu.RLock()
	generation := e.generation
	token := e.st.session.BearerToken()
	e.mu.RUnlock()

	if token == "" {
		return fmt.Errorf("%w: %w", ErrPrecondition, ErrSessionRequired)
	}

	dtos, err := e.backend.ListPermissions(ctx, token, documentID, address)
	if err != nil {
		e.softFail("ListPermissions", address, err)
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.generation != generation {
		return ErrSessionReset
	}

	kept := make([]models.PermissionRecord, 0, len(e.st.permissions)+len(dtos))
	for _, p := range e.st.permissions {
		if p.DocumentID != documentID {
			kept = append(kept, p)
		}
	}
	targets := make([]string, 0, len(dtos))
	for _, dto := range dtos {
		p := permissionFromDTO(dto)
		kept = append(kept, p)
		targets = append(targets, p.Target)
	}
	e.st.permissions = dedupePermissions(kept)

	for i := range e.st.documents {
		if e.st.documents[i].ID == documentID {
			e.st.documents[i].SharedWith = dedupeStrings(targets)
		}
	}

	return nil
}

func (e *Engine) softFail(op, address string, err error) {
	e.logger.Warn().Err(err).
		Str("func", "Engine."+op).
		Str("address", address).
		Bool("temporary", adapter.IsTemporary(err)).
		Msg("read failed, continuing with empty result")
}

func sharedIDs(docs []models.DocumentRecord) []int64 {
	ids := make([]int64, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids
}

func dedupeStrings(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, s := range items {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
