// Package services contains the server-side business logic behind the gRPC
// handlers: account registration and verifier login with token issuance,
// per-account entry storage and ciphertext exports.
package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/cryptox"
	"github.com/dmitrijs2005/gophvault/internal/dbx"
	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/dmitrijs2005/gophvault/internal/models"
	"github.com/dmitrijs2005/gophvault/internal/protocol"
	"github.com/dmitrijs2005/gophvault/internal/server/auth"
	"github.com/dmitrijs2005/gophvault/internal/server/config"
	"github.com/dmitrijs2005/gophvault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophvault/internal/store"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AccountService registers accounts, serves their public records and turns a
// correct verifier into a token pair.
type AccountService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	logger                       logging.Logger
	jwtSecret                    []byte
	decoySecret                  []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	now                          func() time.Time
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger, cfg *config.Config) *AccountService {
	return &AccountService{
		db:                           db,
		repomanager:                  m,
		logger:                       l.With("module", "account_service"),
		jwtSecret:                    []byte(cfg.SecretKey),
		decoySecret:                  []byte(cfg.DecoySecret),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		now:                          time.Now,
	}
}

// validateRecord checks the shape of a record sent for registration. The
// server cannot check the auth tag itself, only that it is well formed.
func validateRecord(acc *models.Account) error {
	if err := protocol.CheckEmail(acc.Email); err != nil {
		return err
	}
	if salt, err := hex.DecodeString(acc.Salt); err != nil || len(salt) != cryptox.SaltSize {
		return fmt.Errorf("%w: salt", common.ErrInvalidRecord)
	}
	if err := acc.KDFParams.Validate(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidRecord, err)
	}
	if _, err := hex.DecodeString(acc.AuthTagData); err != nil || acc.AuthTagData == "" {
		return fmt.Errorf("%w: auth tag", common.ErrInvalidRecord)
	}
	if iv, err := hex.DecodeString(acc.AuthTagIV); err != nil || len(iv) != 16 {
		return fmt.Errorf("%w: auth tag iv", common.ErrInvalidRecord)
	}
	if len(acc.Verifier) != sha256.Size {
		return fmt.Errorf("%w: verifier", common.ErrInvalidRecord)
	}
	return nil
}

// Register stores a new account record built by the client.
func (s *AccountService) Register(ctx context.Context, acc *models.Account) (*models.Account, error) {
	acc.Email = store.NormalizeEmail(acc.Email)
	if err := validateRecord(acc); err != nil {
		return nil, err
	}

	created, err := s.repomanager.Accounts(s.db).Create(ctx, acc)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateAccount) {
			return nil, err
		}
		s.logger.Error(ctx, "account create failed", "error", err)
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "account registered", common.AccountIDKey, created.ID)
	return created, nil
}

// GetAccount returns the public record for email. Unknown emails get a decoy
// record derived from the email, stable across calls, so a lookup does not
// reveal whether an account exists.
func (s *AccountService) GetAccount(ctx context.Context, email string) (*models.Account, error) {
	email = store.NormalizeEmail(email)

	acc, err := s.repomanager.Accounts(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrAccountNotFound) {
			return s.decoyAccount(email), nil
		}
		s.logger.Error(ctx, "account lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	public := acc.Public()
	return &public, nil
}

func (s *AccountService) decoyBytes(label, email string, n int) []byte {
	var out []byte
	for i := byte(0); len(out) < n; i++ {
		mac := hmac.New(sha256.New, s.decoySecret)
		mac.Write([]byte{i})
		mac.Write([]byte(label))
		mac.Write([]byte(email))
		out = mac.Sum(out)
	}
	return out[:n]
}

// decoyAccount mimics a real record: a 16-byte salt, default parameters and
// a three-block auth tag, which is what the canary encrypts to.
func (s *AccountService) decoyAccount(email string) *models.Account {
	return &models.Account{
		Email:       email,
		Salt:        hex.EncodeToString(s.decoyBytes("salt", email, cryptox.SaltSize)),
		KDFParams:   cryptox.DefaultParams(),
		AuthTagData: hex.EncodeToString(s.decoyBytes("tag", email, 48)),
		AuthTagIV:   hex.EncodeToString(s.decoyBytes("iv", email, 16)),
	}
}

// Login checks verifier against the stored one and issues tokens. Unknown
// emails and wrong verifiers both yield common.ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, email string, verifier []byte) (string, *TokenPair, error) {
	acc, err := s.repomanager.Accounts(s.db).GetByEmail(ctx, store.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrAccountNotFound) {
			return "", nil, common.ErrInvalidCredentials
		}
		s.logger.Error(ctx, "account lookup failed", "error", err)
		return "", nil, common.ErrorInternal
	}

	if subtle.ConstantTimeCompare(acc.Verifier, verifier) != 1 {
		return "", nil, common.ErrInvalidCredentials
	}

	pair, err := s.generateTokenPair(ctx, acc.ID, s.db)
	if err != nil {
		return "", nil, err
	}
	return acc.ID, pair, nil
}

// RefreshToken redeems a refresh token and rotates it within one transaction.
func (s *AccountService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	var pair *TokenPair
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		token, err := s.repomanager.RefreshTokens(tx).Consume(ctx, refreshToken)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrInvalidToken
			}
			return err
		}
		if token.Expires.Before(s.now()) {
			return common.ErrRefreshTokenExpired
		}

		pair, err = s.generateTokenPair(ctx, token.AccountID, tx)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrInvalidToken) || errors.Is(err, common.ErrRefreshTokenExpired) {
			return nil, err
		}
		s.logger.Error(ctx, "refresh failed", "error", err)
		return nil, common.ErrorInternal
	}
	return pair, nil
}

// Logout revokes refreshToken. Unknown tokens are ignored.
func (s *AccountService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.repomanager.RefreshTokens(s.db).Delete(ctx, refreshToken); err != nil {
		s.logger.Error(ctx, "logout failed", "error", err)
		return common.ErrorInternal
	}
	return nil
}

// PurgeExpiredTokens drops refresh tokens that can no longer be redeemed.
func (s *AccountService) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	return s.repomanager.RefreshTokens(s.db).DeleteExpired(ctx, s.now())
}

func (s *AccountService) generateTokenPair(ctx context.Context, accountID string, tx dbx.DBTX) (*TokenPair, error) {
	access, err := auth.GenerateToken(accountID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrorInternal
	}
	expires := s.now().Add(s.refreshTokenValidityDuration)
	if err := s.repomanager.RefreshTokens(tx).Create(ctx, accountID, refresh, expires); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
