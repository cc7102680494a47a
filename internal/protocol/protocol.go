// Package protocol implements master password registration and verification.
//
// The key never leaves the client. An account stores the salt, the KDF
// parameters and the canary string encrypted under the derived key; a
// password is correct when that ciphertext opens back to the canary.
package protocol

import (
	"context"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"net/mail"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/cryptox"
	"github.com/dmitrijs2005/gophvault/internal/models"
	"github.com/dmitrijs2005/gophvault/internal/store"
)

const (
	// Canary is the constant encrypted into every account's auth tag.
	Canary = "master_password_verification_check"

	// MinPasswordLength is counted in characters.
	MinPasswordLength = 8
)

// CheckPassword enforces the minimum master password policy.
func CheckPassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return fmt.Errorf("%w: at least %d characters required", common.ErrWeakPassword, MinPasswordLength)
	}
	return nil
}

// CheckEmail accepts a bare address such as user@example.com.
func CheckEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return common.ErrInvalidEmail
	}
	return nil
}

// NewAccount builds a fresh account record for email. The derived key is
// returned alongside; the caller owns it and must wipe it.
func NewAccount(email, password string, params cryptox.Params) (*models.Account, []byte, error) {
	email = store.NormalizeEmail(email)
	if err := CheckEmail(email); err != nil {
		return nil, nil, err
	}
	if err := CheckPassword(password); err != nil {
		return nil, nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, nil, err
	}

	salt := cryptox.NewSalt()
	pw := []byte(password)
	defer common.WipeByteArray(pw)

	key, err := cryptox.Derive(pw, salt, params, params.MemoryLimit())
	if err != nil {
		return nil, nil, err
	}

	tag, err := cryptox.Encrypt(Canary, key)
	if err != nil {
		common.WipeByteArray(key)
		return nil, nil, err
	}

	acc := &models.Account{
		Email:       email,
		Salt:        hex.EncodeToString(salt),
		KDFParams:   params,
		AuthTagData: tag.Ciphertext,
		AuthTagIV:   tag.IV,
		Verifier:    cryptox.MakeVerifier(key),
	}
	return acc, key, nil
}

// Register creates a new account in s. It fails with common.ErrDuplicateAccount
// if the email is already known, whether found up front or rejected on insert.
func Register(ctx context.Context, s store.AccountStore, email, password string, params cryptox.Params) (*models.Account, error) {
	acc, key, err := NewAccount(email, password, params)
	if err != nil {
		return nil, err
	}
	common.WipeByteArray(key)

	_, err = s.FindAccount(ctx, acc.Email)
	switch {
	case err == nil:
		return nil, common.ErrDuplicateAccount
	case !errors.Is(err, common.ErrAccountNotFound):
		return nil, err
	}

	return s.CreateAccount(ctx, acc)
}

// Verify derives the key for password and checks it against acc's auth tag.
// The record may come from an untrusted server, so the derivation is bounded
// by maxMem from the caller and never by the record itself.
// Every kind of mismatch, including a record whose parameters or salt cannot
// be used or exceed maxMem, returns exactly common.ErrInvalidCredentials.
func Verify(acc *models.Account, password string, maxMem int64) ([]byte, error) {
	salt, err := hex.DecodeString(acc.Salt)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}

	pw := []byte(password)
	defer common.WipeByteArray(pw)

	key, err := cryptox.Derive(pw, salt, acc.KDFParams, maxMem)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}

	plain, err := cryptox.Decrypt(acc.AuthTagData, acc.AuthTagIV, key)
	if err != nil || subtle.ConstantTimeCompare([]byte(plain), []byte(Canary)) != 1 {
		common.WipeByteArray(key)
		return nil, common.ErrInvalidCredentials
	}
	return key, nil
}

// Login looks up email and verifies password within maxMem. The key is
// returned only on success. An unknown email yields common.ErrAccountNotFound; callers facing
// users should fold it into ErrInvalidCredentials.
func Login(ctx context.Context, s store.AccountStore, email, password string, maxMem int64) (*models.Account, []byte, error) {
	acc, err := s.FindAccount(ctx, store.NormalizeEmail(email))
	if err != nil {
		return nil, nil, err
	}

	key, err := Verify(acc, password, maxMem)
	if err != nil {
		return nil, nil, err
	}
	return acc, key, nil
}
