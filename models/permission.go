// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PermissionRecord is a grant allowing Target to view document DocumentID.
// At most one active record exists per (DocumentID, Target).
type PermissionRecord struct {
	DocumentID int64     `json:"documentId"`
	Owner      string    `json:"ownerPublicKey"`
	Target     string    `json:"targetPublicKey"`
	GrantedAt  time.Time `json:"grantedAt"`
}

// PermissionKey identifies a permission slot.
type PermissionKey struct {
	DocumentID int64
	Target     string
}

// Key returns the uniqueness key of p.
func (p PermissionRecord) Key() PermissionKey {
	return PermissionKey{DocumentID: p.DocumentID, Target: p.Target}
}
