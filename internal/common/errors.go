// Package common defines shared constants and sentinel errors used across
// the users API server and its tooling. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Service-level errors.
	ErrorInternal = errors.New("internal error")

	// Store errors.
	ErrQueryExecution = errors.New("query execution failed")

	// Configuration errors.
	ErrMissingSecretKey = errors.New("secret key is not configured")
	ErrInvalidTokenTTL  = errors.New("token validity duration must be positive")

	// Token issuance errors.
	ErrSigning = errors.New("token signing failed")

	// Auth errors. Every validation failure wraps ErrInvalidToken and one of
	// the cause errors below.
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenSignature = errors.New("token signature mismatch")
)
