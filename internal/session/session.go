// Package session holds the state of one unlocked vault: the derived key,
// kept encrypted in memory by memguard, and the tokens the store issued.
//
// A Session has a single owner. Lock discards the key but keeps the tokens,
// so a locked session can still be revoked. Invalidate discards both; key
// operations started afterwards fail with common.ErrSessionClosed, while
// operations already running finish on their own copy of the key.
package session

import (
	"sync"

	"github.com/awnumar/memguard"
	"github.com/dmitrijs2005/gophvault/internal/common"
)

// Tokens are the credentials a store accepts for this session.
type Tokens struct {
	Access  string
	Refresh string
}

type Session struct {
	mu        sync.RWMutex
	accountID string
	email     string
	key       *memguard.Enclave
	tokens    Tokens
	closed    bool
}

// New takes ownership of key: its bytes are moved into an enclave and the
// slice is wiped.
func New(accountID, email string, key []byte, tokens Tokens) *Session {
	return &Session{
		accountID: accountID,
		email:     email,
		key:       memguard.NewEnclave(key),
		tokens:    tokens,
	}
}

func (s *Session) AccountID() string { return s.accountID }

func (s *Session) Email() string { return s.email }

// Active reports whether the session still holds a key.
func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key != nil
}

// WithKey runs fn with the plaintext key. The slice is only valid during fn
// and is destroyed afterwards; fn must not retain it.
func (s *Session) WithKey(fn func(key []byte) error) error {
	s.mu.RLock()
	enclave := s.key
	s.mu.RUnlock()

	if enclave == nil {
		return common.ErrSessionClosed
	}

	buf, err := enclave.Open()
	if err != nil {
		return err
	}
	defer buf.Destroy()

	return fn(buf.Bytes())
}

// Closed reports whether Invalidate was called.
func (s *Session) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// Tokens returns the current token pair. It works on a locked session.
func (s *Session) Tokens() (Tokens, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return Tokens{}, common.ErrSessionClosed
	}
	return s.tokens, nil
}

// Rotate replaces the token pair after a refresh. A refresh that completes
// after Lock is still recorded, since the previous refresh token is spent.
func (s *Session) Rotate(t Tokens) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return common.ErrSessionClosed
	}
	s.tokens = t
	return nil
}

// Lock drops the key and keeps the tokens.
func (s *Session) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.key = nil
}

// Invalidate drops the key and tokens. It is safe to call more than once.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.key = nil
	s.tokens = Tokens{}
	s.closed = true
}
