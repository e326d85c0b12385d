package service

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-id-wallet/models"
)

// ChangeKind names a confirmed mutation.
type ChangeKind int

const (
	ChangeIdentityRegistered ChangeKind = iota + 1
	ChangeDocumentCreated
	ChangePermissionGranted
	ChangePermissionRevoked
)

// Change is a backend-confirmed mutation handed to a [Reconciler].
type Change struct {
	Kind ChangeKind

	// Address is the wallet address the change belongs to.
	Address string

	Identity   *models.IdentityRecord
	Document   *models.DocumentRecord
	Permission *models.PermissionRecord
}

// SyncView is the part of the engine a reconciler may drive.
type SyncView interface {
	// Hydrate reloads identity, documents and permissions for address.
	Hydrate(ctx context.Context, address string) (*models.IdentityRecord, error)

	// RefreshPermissions reloads the grants of a single owned document.
	RefreshPermissions(ctx context.Context, address string, documentID int64) error
}

// Reconciler brings local state in line with the backend after a mutation
// has been merged locally.
type Reconciler interface {
	Reconcile(ctx context.Context, view SyncView, change Change) error
}

// FullReloadReconciler re-hydrates everything after every mutation. It is the
// default: server-side share counts and any concurrent changes are picked up
// at the cost of one full reload per mutation.
type FullReloadReconciler struct{}

func (FullReloadReconciler) Reconcile(ctx context.Context, view SyncView, change Change) error {
	_, err := view.Hydrate(ctx, change.Address)
	return err
}

// IncrementalReconciler keeps the local merge and only reloads the grants of
// the document a permission change touched.
type IncrementalReconciler struct{}

func (IncrementalReconciler) Reconcile(ctx context.Context, view SyncView, change Change) error {
	switch change.Kind {
	case ChangePermissionGranted, ChangePermissionRevoked:
		if change.Permission == nil {
			return nil
		}
		return view.RefreshPermissions(ctx, change.Address, change.Permission.DocumentID)
	default:
		return nil
	}
}

// mergeLocked applies change to engine state. e.mu must be held for writing.
func (e *Engine) mergeLocked(change Change) {
	switch change.Kind {
	case ChangeIdentityRegistered:
		if change.Identity != nil {
			e.st.identity = clonePtr(change.Identity)
		}

	case ChangeDocumentCreated:
		if change.Document == nil {
			return
		}
		doc := cloneDocument(*change.Document)
		if i := slices.IndexFunc(e.st.documents, func(d models.DocumentRecord) bool { return d.ID == doc.ID }); i >= 0 {
			e.st.documents[i] = doc
			return
		}
		e.st.documents = append(e.st.documents, doc)

	case ChangePermissionGranted:
		if change.Permission == nil {
			return
		}
		e.st.permissions = upsertPermission(e.st.permissions, *change.Permission)
		e.patchSharedWithLocked(change.Permission.DocumentID, change.Permission.Target, true)

	case ChangePermissionRevoked:
		if change.Permission == nil {
			return
		}
		key := change.Permission.Key()
		e.st.permissions = slices.DeleteFunc(e.st.permissions, func(p models.PermissionRecord) bool {
			return p.Key() == key
		})
		e.patchSharedWithLocked(change.Permission.DocumentID, change.Permission.Target, false)
	}
}

// patchSharedWithLocked keeps the share-count snapshot of an owned document
// in step with a local grant or revoke.
func (e *Engine) patchSharedWithLocked(documentID int64, target string, granted bool) {
	for i := range e.st.documents {
		doc := &e.st.documents[i]
		if doc.ID != documentID {
			continue
		}
		has := slices.Contains(doc.SharedWith, target)
		switch {
		case granted && !has:
			doc.SharedWith = append(slices.Clone(doc.SharedWith), target)
		case !granted && has:
			doc.SharedWith = slices.DeleteFunc(slices.Clone(doc.SharedWith), func(t string) bool { return t == target })
		}
	}
}

// upsertPermission replaces the record with the same (document, target) key
// or appends p. The result never holds two records for one key.
func upsertPermission(perms []models.PermissionRecord, p models.PermissionRecord) []models.PermissionRecord {
	key := p.Key()
	out := make([]models.PermissionRecord, 0, len(perms)+1)
	replaced := false
	for _, existing := range perms {
		if existing.Key() != key {
			out = append(out, existing)
			continue
		}
		if !replaced {
			out = append(out, p)
			replaced = true
		}
	}
	if !replaced {
		out = append(out, p)
	}
	return out
}

// dedupePermissions keeps one record per key, the one with the latest grant
// time, in first-seen order.
func dedupePermissions(perms []models.PermissionRecord) []models.PermissionRecord {
	index := make(map[models.PermissionKey]int, len(perms))
	out := make([]models.PermissionRecord, 0, len(perms))
	for _, p := range perms {
		if i, ok := index[p.Key()]; ok {
			if p.GrantedAt.After(out[i].GrantedAt) {
				out[i] = p
			}
			continue
		}
		index[p.Key()] = len(out)
		out = append(out, p)
	}
	return out
}
