// Package common defines shared constants and sentinel errors used across
// the LostLink client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Transport-level errors mapped from HTTP status codes.
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation error")
	ErrUnavailable  = errors.New("server unavailable")
	ErrInternal     = errors.New("internal error")

	// Item-specific business-rule errors.
	ErrItemNotDeletable  = errors.New("only submitted items can be deleted")
	ErrInvalidTransition = errors.New("status transition not allowed")

	// Auth-specific errors.
	ErrAccountDisabled  = errors.New("account is disabled")
	ErrNotLoggedIn      = errors.New("not logged in")
	ErrPasswordMismatch = errors.New("new passwords do not match")
)
