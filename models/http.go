// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpRequest is the body of POST /auth/register.
type SignUpRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FullName  string `json:"fullName"`
	PublicKey string `json:"publicKey"`
}

// AuthResponse is returned by both login and register.
type AuthResponse struct {
	Token     string `json:"token"`
	FullName  string `json:"fullName"`
	PublicKey string `json:"publicKey"`
}

// IdentityRequest is the body of POST /identities.
type IdentityRequest struct {
	PublicKey string `json:"publicKey"`
	FullName  string `json:"fullName"`
}

// IdentityDTO is the identity resource as served by the backend.
type IdentityDTO struct {
	PublicKey   string    `json:"publicKey"`
	FullName    string    `json:"fullName"`
	CreatedAt   time.Time `json:"createdAt"`
	Transaction string    `json:"transaction,omitempty"`
}

// CreateDocumentRequest is the body of POST /documents. Hash is computed on
// the client and sent as fact.
type CreateDocumentRequest struct {
	OwnerEmail     string  `json:"ownerEmail"`
	OwnerPublicKey string  `json:"ownerPublicKey"`
	DocType        string  `json:"docType"`
	DocNumber      string  `json:"docNumber"`
	Hash           string  `json:"hash"`
	IssueDate      string  `json:"issueDate"`
	ExpiryDate     *string `json:"expiryDate,omitempty"`
	MetadataURI    string  `json:"metadataUri,omitempty"`
}

// DocumentDTO is the document resource as served by the backend.
type DocumentDTO struct {
	ID             int64     `json:"id"`
	OwnerEmail     string    `json:"ownerEmail"`
	OwnerPublicKey string    `json:"ownerPublicKey"`
	DocType        string    `json:"docType"`
	DocNumber      string    `json:"docNumber"`
	Hash           string    `json:"hash"`
	CreatedAt      time.Time `json:"createdAt"`
	IssueDate      string    `json:"issueDate"`
	ExpiryDate     *string   `json:"expiryDate,omitempty"`
	MetadataURI    string    `json:"metadataUri,omitempty"`
	SharedWith     []string  `json:"sharedWith"`
}

// ShareRequest is the body of POST /documents/{id}/share.
type ShareRequest struct {
	OwnerPublicKey  string `json:"ownerPublicKey"`
	TargetPublicKey string `json:"targetPublicKey"`
}

// PermissionDTO is a share grant as served by the backend.
type PermissionDTO struct {
	DocumentID      int64     `json:"documentId"`
	OwnerPublicKey  string    `json:"ownerPublicKey"`
	TargetPublicKey string    `json:"targetPublicKey"`
	GrantedAt       time.Time `json:"grantedAt"`
}
