package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/dbx"
	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/dmitrijs2005/gophvault/internal/models"
	"github.com/dmitrijs2005/gophvault/internal/server/config"
	sm "github.com/dmitrijs2005/gophvault/internal/server/models"
	"github.com/dmitrijs2005/gophvault/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/gophvault/internal/server/repositories/entries"
	"github.com/dmitrijs2005/gophvault/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophvault/internal/server/repositories/repomanager"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeAccountsRepo struct {
	accounts.Repository
	byEmail   map[string]*models.Account
	createErr error
	getErr    error
}

func (f *fakeAccountsRepo) Create(ctx context.Context, acc *models.Account) (*models.Account, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[acc.Email]; ok {
		return nil, common.ErrDuplicateAccount
	}
	c := *acc
	c.ID = "acc-" + acc.Email
	c.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	f.byEmail[acc.Email] = &c
	return &c, nil
}

func (f *fakeAccountsRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	acc, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrAccountNotFound
	}
	c := *acc
	return &c, nil
}

type fakeTokensRepo struct {
	refreshtokens.Repository
	mu        sync.Mutex
	tokens    map[string]sm.RefreshToken
	createErr error
	deleteErr error
}

func (f *fakeTokensRepo) Create(ctx context.Context, accountID, token string, expires time.Time) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[token] = sm.RefreshToken{AccountID: accountID, Token: token, Expires: expires}
	return nil
}

func (f *fakeTokensRepo) Consume(ctx context.Context, token string) (*sm.RefreshToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(f.tokens, token)
	return &t, nil
}

func (f *fakeTokensRepo) Delete(ctx context.Context, token string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens, token)
	return nil
}

func (f *fakeTokensRepo) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for k, t := range f.tokens {
		if t.Expires.Before(before) {
			delete(f.tokens, k)
			n++
		}
	}
	return n, nil
}

type fakeEntriesRepo struct {
	entries.Repository
	list      []models.Entry
	listErr   error
	created   []models.Entry
	createErr error
	updateErr error
	deleteErr error
	writes    int
}

func (f *fakeEntriesRepo) List(ctx context.Context, accountID string) ([]models.Entry, error) {
	return f.list, f.listErr
}

func (f *fakeEntriesRepo) Create(ctx context.Context, accountID string, e models.Entry) (models.Entry, error) {
	if f.createErr != nil {
		return models.Entry{}, f.createErr
	}
	f.created = append(f.created, e)
	return e, nil
}

func (f *fakeEntriesRepo) Update(ctx context.Context, accountID string, e models.Entry) (models.Entry, error) {
	f.writes++
	return e, f.updateErr
}

func (f *fakeEntriesRepo) Delete(ctx context.Context, accountID, entryID string) error {
	f.writes++
	return f.deleteErr
}

type fakeRepoManager struct {
	repomanager.RepositoryManager
	accounts *fakeAccountsRepo
	tokens   *fakeTokensRepo
	entries  *fakeEntriesRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		accounts: &fakeAccountsRepo{byEmail: map[string]*models.Account{}},
		tokens:   &fakeTokensRepo{tokens: map[string]sm.RefreshToken{}},
		entries:  &fakeEntriesRepo{},
	}
}

func (m *fakeRepoManager) Accounts(dbx.DBTX) accounts.Repository           { return m.accounts }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.tokens }
func (m *fakeRepoManager) Entries(dbx.DBTX) entries.Repository             { return m.entries }

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.S3BaseEndpoint = "http://127.0.0.1:9000"
	return cfg
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}
