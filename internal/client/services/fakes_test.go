package services

import (
	"context"
	"crypto/subtle"
	"io"
	"log/slog"
	"sync"

	"github.com/dmitrijs2005/gophvault/internal/client/client"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/cryptox"
	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/dmitrijs2005/gophvault/internal/models"
	"github.com/dmitrijs2005/gophvault/internal/session"
	"github.com/dmitrijs2005/gophvault/internal/store/storetest"
)

func fastParams() cryptox.Params {
	return cryptox.Params{Version: cryptox.ParamsVersion, Cost: 1 << 10, BlockSize: 8, Parallelization: 1}
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeBackend is a MemoryStore with a verifier-checking authenticator.
type fakeBackend struct {
	*storetest.MemoryStore

	mu         sync.Mutex
	revoked    []session.Tokens
	revokeErr  error
	pingErr    error
	entriesErr error
	sawSession bool
}

var _ client.Backend = (*fakeBackend)(nil)

func newFakeBackend() *fakeBackend {
	return &fakeBackend{MemoryStore: storetest.NewMemoryStore()}
}

func (f *fakeBackend) Authenticate(ctx context.Context, email string, verifier []byte) (string, session.Tokens, error) {
	acc, err := f.FindAccount(ctx, email)
	if err != nil {
		return "", session.Tokens{}, common.ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare(acc.Verifier, verifier) != 1 {
		return "", session.Tokens{}, common.ErrInvalidCredentials
	}
	return acc.ID, session.Tokens{Access: "access-" + acc.ID, Refresh: "refresh-" + acc.ID}, nil
}

func (f *fakeBackend) Revoke(ctx context.Context, tokens session.Tokens) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked = append(f.revoked, tokens)
	return f.revokeErr
}

func (f *fakeBackend) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeBackend) Close() error { return nil }

func (f *fakeBackend) ListEntries(ctx context.Context, accountID string) ([]models.Entry, error) {
	_, f.sawSession = session.FromContext(ctx)
	if f.entriesErr != nil {
		return nil, f.entriesErr
	}
	return f.MemoryStore.ListEntries(ctx, accountID)
}

// exportingBackend additionally publishes exports.
type exportingBackend struct {
	*fakeBackend
	link *client.ExportLink
	err  error
}

func (e *exportingBackend) Export(ctx context.Context) (*client.ExportLink, error) {
	return e.link, e.err
}
