// Package common defines shared constants and sentinel errors used across
// client and server layers of AuthGate. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInvalidInput = errors.New("invalid input")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorInternal     = errors.New("internal error")
	ErrorUnavailable  = errors.New("service unavailable")

	// Token presentation errors (Access Guard).
	ErrMissingToken = errors.New("missing token")

	// Token lifecycle errors.
	ErrTokenMalformed = errors.New("malformed token")
	ErrTokenSignature = errors.New("token signature mismatch")
	ErrTokenExpired   = errors.New("token expired")
)
