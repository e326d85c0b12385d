package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-id-wallet/internal/history"
	"github.com/MKhiriev/go-id-wallet/models"
)

// RegisterIdentity registers name for the connected wallet, connecting one
// first when needed. Email and RFC are kept in the local metadata store; a
// blank RFC becomes "RFC" followed by the upper-cased first eight characters
// of the address.
func (e *Engine) RegisterIdentity(ctx context.Context, name, email, rfc string) (models.IdentityRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.IdentityRecord{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	acc, err := e.EnsureWallet(ctx)
	if err != nil {
		return models.IdentityRecord{}, err
	}
	address := acc.Address

	rfc = strings.TrimSpace(rfc)
	if rfc == "" {
		rfc = placeholderRFC(address)
	}
	email = strings.TrimSpace(email)

	e.mu.RLock()
	generation := e.generation
	token := e.st.session.BearerToken()
	e.mu.RUnlock()

	dto, err := e.backend.RegisterIdentity(ctx, token, models.IdentityRequest{PublicKey: address, FullName: name})
	if err != nil {
		e.logger.Warn().Err(err).Str("func", "Engine.RegisterIdentity").Str("address", address).Msg("register failed")
		return models.IdentityRecord{}, err
	}

	meta := models.IdentityMetadata{Email: email, RFC: rfc}
	if err := e.metadata.Put(ctx, address, meta); err != nil {
		e.logger.Warn().Err(err).Str("func", "Engine.RegisterIdentity").Msg("identity metadata not stored")
	}

	identity := identityFromDTO(dto)
	if identity.PublicAddress == "" {
		identity.ID = address
		identity.PublicAddress = address
	}
	if identity.DisplayName == "" {
		identity.DisplayName = name
	}
	identity.Email = email
	identity.RFC = rfc

	change := Change{Kind: ChangeIdentityRegistered, Address: address, Identity: &identity}
	entry := e.history.Entry(models.HistoryIdentity, "Identity registered",
		fmt.Sprintf("%s registered as %s", name, address),
		history.WithTxRef(dto.Transaction), history.WithActor(address))
	if err := e.commit(generation, change, entry); err != nil {
		return models.IdentityRecord{}, err
	}

	e.reconcile(ctx, change)

	return identity, nil
}

func placeholderRFC(address string) string {
	return "RFC" + strings.ToUpper(address[:min(8, len(address))])
}

// commit merges a confirmed change and records its history entry unless the
// engine was reset meanwhile. Both happen under e.mu so Disconnect observes
// either neither or both.
func (e *Engine) commit(generation uint64, change Change, entry models.HistoryEntry) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.generation != generation {
		return ErrSessionReset
	}
	e.mergeLocked(change)
	e.history.Add(entry)
	return nil
}

// reconcile runs the configured reconciler. The change is already merged,
// so failures are only logged.
func (e *Engine) reconcile(ctx context.Context, change Change) {
	if err := e.reconciler.Reconcile(ctx, e, change); err != nil {
		e.logger.Warn().Err(err).Str("func", "Engine.reconcile").Int("kind", int(change.Kind)).Msg("reconcile failed")
	}
}
