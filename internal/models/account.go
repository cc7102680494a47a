// Package models defines the records exchanged with an identity store.
// Everything here is either public metadata or ciphertext.
package models

import (
	"time"

	"github.com/dmitrijs2005/gophvault/internal/cryptox"
)

// Account is the per-user record needed to re-derive the vault key and to
// check a master password locally.
type Account struct {
	ID    string `json:"id,omitempty"`
	Email string `json:"email"`
	// Salt is 16 random bytes, lowercase hex.
	Salt      string         `json:"salt"`
	KDFParams cryptox.Params `json:"kdfParams"`
	// AuthTagData and AuthTagIV hold the encrypted canary.
	AuthTagData string `json:"authTagData"`
	AuthTagIV   string `json:"authTagIv"`
	// Verifier is the SHA-256 of the derived key. It is sent once at
	// registration and never returned by lookups.
	Verifier  []byte    `json:"verifier,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns the part of a that is handed to anyone asking for the
// email: no verifier, no internal id.
func (a Account) Public() Account {
	a.ID = ""
	a.Verifier = nil
	a.CreatedAt = time.Time{}
	return a
}
