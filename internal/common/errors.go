package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Account lifecycle errors.
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password is too weak")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidRecord      = errors.New("invalid record")

	// ErrStoreUnavailable reports a transient identity store failure.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrUnauthenticated means the session is no longer accepted by the store
	// and must be re-established with the master password.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrSessionClosed is returned for operations on an invalidated session.
	ErrSessionClosed = errors.New("session closed")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
