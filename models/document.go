// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultDocumentType is the document type used when metadata cannot be decoded.
const DefaultDocumentType = "Documento"

// DocumentMetadata describes a tokenized document. The field order here is the
// order used by the content hash canonical form.
type DocumentMetadata struct {
	// Type is the document kind, e.g. "INE" or "Pasaporte".
	Type string `json:"type"`

	// Number is the document number as printed on it.
	Number string `json:"number"`

	// IssueDate is a calendar date in YYYY-MM-DD form.
	IssueDate string `json:"issueDate"`

	// ExpiryDate is optional; nil means the document does not expire.
	ExpiryDate *string `json:"expiryDate"`

	// CreatedAt is an ISO-8601 UTC timestamp set when the document was created.
	CreatedAt string `json:"createdAt"`
}

// Equal reports whether m and other describe the same metadata.
func (m DocumentMetadata) Equal(other DocumentMetadata) bool {
	if m.Type != other.Type || m.Number != other.Number || m.IssueDate != other.IssueDate || m.CreatedAt != other.CreatedAt {
		return false
	}
	if (m.ExpiryDate == nil) != (other.ExpiryDate == nil) {
		return false
	}
	return m.ExpiryDate == nil || *m.ExpiryDate == *other.ExpiryDate
}

// DocumentRecord is a content-hashed document reference as held by the engine.
type DocumentRecord struct {
	ID          int64            `json:"id"`
	Hash        string           `json:"hash"`
	Owner       string           `json:"ownerPublicKey"`
	MetadataURI string           `json:"metadataUri"`
	Metadata    DocumentMetadata `json:"metadata"`

	// SharedWith lists the addresses holding an active share.
	SharedWith []string `json:"sharedWith"`
}

// NewDocument is the caller input for document creation.
type NewDocument struct {
	Type       string
	Number     string
	IssueDate  string
	ExpiryDate *string
}
