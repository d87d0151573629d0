// Package common defines shared constants and sentinel errors used across
// the layers of RecipeVault. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound          = errors.New("not found")
	ErrorDuplicateEmail    = errors.New("email already registered")
	ErrorDuplicateUsername = errors.New("username already taken")

	// Service-level errors (generic flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")
	ErrorValidation   = errors.New("validation error")

	// Token lifecycle errors. All of them collapse to "not authenticated"
	// at the HTTP boundary; the distinction exists for diagnostics only.
	ErrTokenFormat    = errors.New("invalid token format")
	ErrTokenSignature = errors.New("invalid token signature")
	ErrTokenUnknown   = errors.New("unknown or revoked token")
	ErrTokenExpired   = errors.New("token expired")
)
