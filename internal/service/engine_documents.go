package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-id-wallet/internal/document"
	"github.com/MKhiriev/go-id-wallet/internal/history"
	"github.com/MKhiriev/go-id-wallet/models"
)

// CreateDocument tokenizes a document for the current identity. The content
// hash is computed locally over the owner address and the metadata and is
// sent to the backend as fact.
func (e *Engine) CreateDocument(ctx context.Context, in models.NewDocument) (models.DocumentRecord, error) {
	in.Type = strings.TrimSpace(in.Type)
	in.Number = strings.TrimSpace(in.Number)
	in.IssueDate = strings.TrimSpace(in.IssueDate)
	if in.Type == "" || in.Number == "" || in.IssueDate == "" {
		return models.DocumentRecord{}, fmt.Errorf("%w: type, number and issue date are required", ErrInvalidInput)
	}

	scope, err := e.preconditions()
	if err != nil {
		return models.DocumentRecord{}, err
	}
	identity, session := scope.identity, scope.session

	meta := models.DocumentMetadata{
		Type:       in.Type,
		Number:     in.Number,
		IssueDate:  in.IssueDate,
		ExpiryDate: in.ExpiryDate,
		CreatedAt:  e.now().UTC().Format(models.TimestampLayout),
	}
	hash := document.Hash(identity.PublicAddress, meta)
	uri, err := document.Encode(meta)
	if err != nil {
		return models.DocumentRecord{}, err
	}

	ownerEmail := session.Email
	if ownerEmail == "" {
		ownerEmail = identity.Email
	}

	dto, err := e.backend.CreateDocument(ctx, session.BearerToken(), models.CreateDocumentRequest{
		OwnerEmail:     ownerEmail,
		OwnerPublicKey: identity.PublicAddress,
		DocType:        meta.Type,
		DocNumber:      meta.Number,
		Hash:           hash,
		IssueDate:      meta.IssueDate,
		ExpiryDate:     meta.ExpiryDate,
		MetadataURI:    uri,
	})
	if err != nil {
		e.logger.Warn().Err(err).Str("func", "Engine.CreateDocument").Msg("create failed")
		return models.DocumentRecord{}, err
	}

	if dto.MetadataURI == "" {
		dto.MetadataURI = uri
	}
	doc := documentFromDTO(dto)
	doc.Hash = hash
	if doc.Owner == "" {
		doc.Owner = identity.PublicAddress
	}

	change := Change{Kind: ChangeDocumentCreated, Address: identity.PublicAddress, Document: &doc}
	entry := e.history.Entry(models.HistoryDocument, "Document tokenized",
		fmt.Sprintf("%s %s registered with hash %s", meta.Type, meta.Number, document.Short(hash)),
		history.WithActor(identity.PublicAddress))
	if err := e.commit(scope.generation, change, entry); err != nil {
		return models.DocumentRecord{}, err
	}

	e.reconcile(ctx, change)

	return cloneDocument(doc), nil
}

// ShareDocument grants target read access to an owned document. Repeating a
// share for the same target leaves a single grant carrying the latest time.
func (e *Engine) ShareDocument(ctx context.Context, documentID int64, target string) (models.PermissionRecord, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return models.PermissionRecord{}, fmt.Errorf("%w: target address is required", ErrInvalidInput)
	}

	scope, err := e.preconditions()
	if err != nil {
		return models.PermissionRecord{}, err
	}
	identity, session := scope.identity, scope.session

	unlock := e.docLocks.Lock(documentID)
	defer unlock()

	dto, err := e.backend.ShareDocument(ctx, session.BearerToken(), documentID, models.ShareRequest{
		OwnerPublicKey:  identity.PublicAddress,
		TargetPublicKey: target,
	})
	if err != nil {
		e.logger.Warn().Err(err).Str("func", "Engine.ShareDocument").Int64("document", documentID).Msg("share failed")
		return models.PermissionRecord{}, err
	}

	perm := permissionFromDTO(dto)
	if perm.DocumentID == 0 {
		perm.DocumentID = documentID
	}
	if perm.Owner == "" {
		perm.Owner = identity.PublicAddress
	}
	if perm.Target == "" {
		perm.Target = target
	}
	if perm.GrantedAt.IsZero() {
		perm.GrantedAt = e.now().UTC()
	}

	change := Change{Kind: ChangePermissionGranted, Address: identity.PublicAddress, Permission: &perm}
	entry := e.history.Entry(models.HistoryAccess, "Access granted",
		fmt.Sprintf("Document #%d shared with %s", documentID, target),
		history.WithActor(identity.PublicAddress))
	if err := e.commit(scope.generation, change, entry); err != nil {
		return models.PermissionRecord{}, err
	}

	e.reconcile(ctx, change)

	return perm, nil
}

// RevokePermission removes target's grant on an owned document. A backend
// failure is returned as-is and the local grant is kept.
func (e *Engine) RevokePermission(ctx context.Context, documentID int64, target string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return fmt.Errorf("%w: target address is required", ErrInvalidInput)
	}

	scope, err := e.preconditions()
	if err != nil {
		return err
	}
	identity, session := scope.identity, scope.session

	unlock := e.docLocks.Lock(documentID)
	defer unlock()

	if err := e.backend.RevokeShare(ctx, session.BearerToken(), documentID, identity.PublicAddress, target); err != nil {
		e.logger.Warn().Err(err).Str("func", "Engine.RevokePermission").Int64("document", documentID).Msg("revoke failed")
		return err
	}

	perm := models.PermissionRecord{DocumentID: documentID, Owner: identity.PublicAddress, Target: target}
	change := Change{Kind: ChangePermissionRevoked, Address: identity.PublicAddress, Permission: &perm}
	entry := e.history.Entry(models.HistoryAccess, "Access revoked",
		fmt.Sprintf("Access to document #%d revoked for %s", documentID, target),
		history.WithActor(identity.PublicAddress))
	if err := e.commit(scope.generation, change, entry); err != nil {
		return err
	}

	e.reconcile(ctx, change)

	return nil
}
