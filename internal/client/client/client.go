package client

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/session"
	"github.com/dmitrijs2005/gophvault/internal/store"
)

// Authenticator turns a verifier into session tokens.
type Authenticator interface {
	// Authenticate returns the account id and tokens for a matching
	// verifier, or common.ErrInvalidCredentials.
	Authenticate(ctx context.Context, email string, verifier []byte) (string, session.Tokens, error)
	// Revoke invalidates tokens on the backend side.
	Revoke(ctx context.Context, tokens session.Tokens) error
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
	Close() error
}

// Backend is everything the client services need from a vault backend.
type Backend interface {
	store.IdentityStore
	Authenticator
}

// ExportLink points at a downloadable ciphertext snapshot.
type ExportLink struct {
	URL       string
	ExpiresAt time.Time
}

// Exporter is implemented by backends that can publish a snapshot.
type Exporter interface {
	Export(ctx context.Context) (*ExportLink, error)
}
