// Package common defines shared constants and sentinel errors used across
// the diary server and its CLI client. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Interview errors.
	ErrSessionNotFound = errors.New("interview session not found")

	// ErrGeneration marks a failed call to the language-model or
	// image-generation capability. The underlying cause is wrapped.
	ErrGeneration = errors.New("generation failed")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
