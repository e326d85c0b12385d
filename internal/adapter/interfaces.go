// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the typed client for the identity/document
// backend.
//
// The primary abstraction is [BackendAdapter]. The client is stateless: every
// call carries the bearer token it should be authorized with, and an empty
// token sends the request without an Authorization header. One call is one
// HTTP exchange; nothing is retried here.
//
// Non-2xx responses are returned as [*APIError]. Its Is method maps the
// status code to the sentinels in errors.go so callers can use [errors.Is]
// (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-id-wallet/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines typed communication with the identity/document
// backend.
type BackendAdapter interface {
	// Login exchanges email and password for a session token.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Register creates an account and returns its session token.
	Register(ctx context.Context, req models.SignUpRequest) (models.AuthResponse, error)

	// RegisterIdentity binds a display name to a public key.
	RegisterIdentity(ctx context.Context, token string, req models.IdentityRequest) (models.IdentityDTO, error)

	// GetIdentity fetches the identity registered for publicKey. A missing
	// identity is reported as [ErrNotFound].
	GetIdentity(ctx context.Context, token, publicKey string) (models.IdentityDTO, error)

	// ListOwnedDocuments returns documents whose owner is ownerPublicKey.
	ListOwnedDocuments(ctx context.Context, token, ownerPublicKey string) ([]models.DocumentDTO, error)

	// ListSharedDocuments returns documents shared with targetPublicKey.
	ListSharedDocuments(ctx context.Context, token, targetPublicKey string) ([]models.DocumentDTO, error)

	// CreateDocument records a new document. The hash in req is trusted as
	// computed by the caller.
	CreateDocument(ctx context.Context, token string, req models.CreateDocumentRequest) (models.DocumentDTO, error)

	// ShareDocument grants req.TargetPublicKey access to documentID.
	ShareDocument(ctx context.Context, token string, documentID int64, req models.ShareRequest) (models.PermissionDTO, error)

	// RevokeShare removes the grant of targetPublicKey on documentID.
	RevokeShare(ctx context.Context, token string, documentID int64, ownerPublicKey, targetPublicKey string) error

	// ListPermissions returns the grants on documentID.
	ListPermissions(ctx context.Context, token string, documentID int64, ownerPublicKey string) ([]models.PermissionDTO, error)
}
