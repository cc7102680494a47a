package client

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/gophvault/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/gophvault/internal/client/repositories/entries"
	"github.com/dmitrijs2005/gophvault/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/models"
	"github.com/dmitrijs2005/gophvault/internal/session"
	"github.com/dmitrijs2005/gophvault/internal/store"
)

const lastEmailKey = "last_email"

// LocalStore is the standalone Backend: accounts and sealed entries live in
// the local SQLite database and nothing leaves the machine.
type LocalStore struct {
	db       *sql.DB
	accounts accounts.Repository
	entries  entries.Repository
	metadata metadata.Repository
}

func NewLocalStore(db *sql.DB) *LocalStore {
	return &LocalStore{
		db:       db,
		accounts: accounts.NewSQLiteRepository(db),
		entries:  entries.NewSQLiteRepository(db),
		metadata: metadata.NewSQLiteRepository(db),
	}
}

var _ store.ExactLookup = (*LocalStore)(nil)

// ExactLookup marks FindAccount as reporting unknown emails, so
// registration can check for an existing account first.
func (l *LocalStore) ExactLookup() {}

func (l *LocalStore) FindAccount(ctx context.Context, email string) (*models.Account, error) {
	return l.accounts.GetByEmail(ctx, store.NormalizeEmail(email))
}

func (l *LocalStore) CreateAccount(ctx context.Context, acc *models.Account) (*models.Account, error) {
	c := *acc
	c.Email = store.NormalizeEmail(c.Email)
	return l.accounts.Create(ctx, &c)
}

func (l *LocalStore) ListEntries(ctx context.Context, accountID string) ([]models.Entry, error) {
	return l.entries.List(ctx, accountID)
}

func (l *LocalStore) AppendEntry(ctx context.Context, accountID string, e models.Entry) (models.Entry, error) {
	return l.entries.Create(ctx, accountID, e)
}

func (l *LocalStore) UpdateEntry(ctx context.Context, accountID string, e models.Entry) (models.Entry, error) {
	return l.entries.Update(ctx, accountID, e)
}

func (l *LocalStore) DeleteEntry(ctx context.Context, accountID, entryID string) error {
	return l.entries.Delete(ctx, accountID, entryID)
}

// Authenticate compares verifier with the stored one and hands out a random
// opaque access token. Local sessions have no refresh token.
func (l *LocalStore) Authenticate(ctx context.Context, email string, verifier []byte) (string, session.Tokens, error) {
	acc, err := l.FindAccount(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrAccountNotFound) {
			return "", session.Tokens{}, common.ErrInvalidCredentials
		}
		return "", session.Tokens{}, err
	}

	if subtle.ConstantTimeCompare(acc.Verifier, verifier) != 1 {
		return "", session.Tokens{}, common.ErrInvalidCredentials
	}

	token, err := common.MakeRandHexString(32)
	if err != nil {
		return "", session.Tokens{}, err
	}
	return acc.ID, session.Tokens{Access: token}, nil
}

func (l *LocalStore) Revoke(ctx context.Context, tokens session.Tokens) error {
	return nil
}

func (l *LocalStore) Ping(ctx context.Context) error {
	if err := l.db.PingContext(ctx); err != nil {
		return common.ErrStoreUnavailable
	}
	return nil
}

func (l *LocalStore) Close() error {
	return l.db.Close()
}

// LastEmail returns the email of the last successful login, if any.
func (l *LocalStore) LastEmail(ctx context.Context) string {
	v, ok, err := l.metadata.Get(ctx, lastEmailKey)
	if err != nil || !ok {
		return ""
	}
	return v
}

func (l *LocalStore) RememberEmail(ctx context.Context, email string) error {
	return l.metadata.Put(ctx, lastEmailKey, email)
}

// ForgetEmail drops the remembered email.
func (l *LocalStore) ForgetEmail(ctx context.Context) error {
	return l.metadata.Delete(ctx, lastEmailKey)
}
