// Package common defines shared constants and sentinel errors used across
// the storage, service and CLI layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Storage setup errors.
	ErrUnknownBackend   = errors.New("unknown storage backend")
	ErrStorageNotConfig = errors.New("storage backend is not configured")

	// Session and authorization errors.
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials or email not verified")

	// Registration errors.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrEmailRequired    = errors.New("email is required")
	ErrEmailExists      = errors.New("email already exists")

	// Account management errors.
	ErrSelfDeletion = errors.New("cannot delete the signed-in account")

	// Request errors.
	ErrEmptyRequestType = errors.New("request type is required")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
