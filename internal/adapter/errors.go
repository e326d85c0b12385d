// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"net/http"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// APIError is a non-2xx backend response. Error returns the server message
// as-is so callers can surface it directly; use [errors.Is] with the
// sentinels above to branch on the status class.
type APIError struct {
	// Message is the server-provided message, or the status text when the
	// body carried none.
	Message string
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Payload is the raw response body.
	Payload []byte
}

func (e *APIError) Error() string {
	return e.Message
}

// Is matches the sentinel that corresponds to e.StatusCode.
func (e *APIError) Is(target error) bool {
	sentinel := statusSentinel(e.StatusCode)
	return sentinel != nil && sentinel == target
}

// Temporary reports whether the failure is on the server side (5xx) and the
// caller may retry the whole operation.
func (e *APIError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// IsTemporary reports whether err is an [APIError] with a 5xx status.
func IsTemporary(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Temporary()
}

func statusSentinel(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return nil
	}
}
