// Package services contains the application services behind the vault CLI.
// This file defines the authentication service: register, unlock, lock and
// logout, and the backend liveness check.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophvault/internal/client/client"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/cryptox"
	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/dmitrijs2005/gophvault/internal/models"
	"github.com/dmitrijs2005/gophvault/internal/protocol"
	"github.com/dmitrijs2005/gophvault/internal/session"
	"github.com/dmitrijs2005/gophvault/internal/store"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create an account record for email, protected by password.
//   - Login: verify password locally, authenticate with the backend and
//     return an unlocked session. Unknown emails and wrong passwords are
//     both reported as common.ErrInvalidCredentials.
//   - Lock: discard the session key; backend tokens are kept for Logout.
//   - Logout: revoke the backend tokens (best effort) and discard the
//     session, locked or not.
//   - Ping: check backend liveness.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*models.Account, error)
	Login(ctx context.Context, email, password string) (*session.Session, error)
	Lock(sess *session.Session)
	Logout(ctx context.Context, sess *session.Session) error
	Ping(ctx context.Context) error
}

type authService struct {
	backend client.Backend
	params  cryptox.Params
	logger  logging.Logger
}

// NewAuthService returns an AuthService that registers new accounts with
// params. params.MemoryLimit() also caps key derivation at login, whatever
// the backend's record asks for.
func NewAuthService(b client.Backend, params cryptox.Params, l logging.Logger) AuthService {
	return &authService{backend: b, params: params, logger: l}
}

// Register builds the record on the client and hands only public material
// and the verifier to the backend. Stores with exact lookups get the
// existence pre-check of protocol.Register. The remote backend answers every
// lookup, so there duplicates are rejected on insert only.
func (a *authService) Register(ctx context.Context, email, password string) (*models.Account, error) {
	var (
		created *models.Account
		err     error
	)
	if s, ok := a.backend.(store.ExactLookup); ok {
		created, err = protocol.Register(ctx, s, email, password, a.params)
	} else {
		created, err = a.create(ctx, email, password)
	}
	if err != nil {
		return nil, err
	}

	a.logger.Info(ctx, "account registered", "email", created.Email)
	return created, nil
}

func (a *authService) create(ctx context.Context, email, password string) (*models.Account, error) {
	acc, key, err := protocol.NewAccount(email, password, a.params)
	if err != nil {
		return nil, err
	}
	common.WipeByteArray(key)

	return a.backend.CreateAccount(ctx, acc)
}

func (a *authService) Login(ctx context.Context, email, password string) (*session.Session, error) {
	acc, key, err := protocol.Login(ctx, a.backend, email, password, a.params.MemoryLimit())
	if err != nil {
		if errors.Is(err, common.ErrAccountNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	accountID, tokens, err := a.backend.Authenticate(ctx, acc.Email, cryptox.MakeVerifier(key))
	if err != nil {
		common.WipeByteArray(key)
		return nil, err
	}

	a.logger.Info(ctx, "vault unlocked", "email", acc.Email)
	return session.New(accountID, acc.Email, key, tokens), nil
}

func (a *authService) Lock(sess *session.Session) {
	sess.Lock()
}

func (a *authService) Logout(ctx context.Context, sess *session.Session) error {
	tokens, err := sess.Tokens()
	sess.Invalidate()
	if err != nil {
		return nil
	}

	if err := a.backend.Revoke(ctx, tokens); err != nil {
		a.logger.Warn(ctx, "token revocation failed", "error", err)
		return err
	}
	return nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.backend.Ping(ctx)
}
