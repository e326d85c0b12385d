// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AuthSession is the bearer credential plus the profile fields returned by
// login or signup. It is the only authorization source for backend calls.
type AuthSession struct {
	// Token is the bearer token sent in the Authorization header.
	Token string `json:"token"`

	// Email is the login email the session was opened with.
	Email string `json:"email"`

	// DisplayName is the full name reported by the backend.
	DisplayName string `json:"displayName"`

	// PublicAddress is the wallet address the account is registered with.
	PublicAddress string `json:"publicKey"`
}

// HasToken reports whether s carries a usable token. A nil session and a
// session with a blank token are treated the same way: as "no token".
func (s *AuthSession) HasToken() bool {
	return s != nil && strings.TrimSpace(s.Token) != ""
}

// BearerToken returns the token or an empty string for a tokenless session.
func (s *AuthSession) BearerToken() string {
	if !s.HasToken() {
		return ""
	}
	return strings.TrimSpace(s.Token)
}
