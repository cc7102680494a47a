package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/client/client"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/models"
	"github.com/dmitrijs2005/gophvault/internal/netx"
	"github.com/dmitrijs2005/gophvault/internal/session"
	"github.com/dmitrijs2005/gophvault/internal/store"
	"github.com/dmitrijs2005/gophvault/internal/vault"
)

// VaultService seals and opens credentials of an unlocked session.
//
// Every call runs with sess attached to the context so that a remote
// backend can authenticate it. When the backend no longer accepts the
// session, the session is invalidated and the error returned.
type VaultService interface {
	Add(ctx context.Context, sess *session.Session, c vault.Credential) (models.Entry, error)
	List(ctx context.Context, sess *session.Session) ([]vault.Result, error)
	Update(ctx context.Context, sess *session.Session, id string, c vault.Credential) (models.Entry, error)
	Delete(ctx context.Context, sess *session.Session, id string) error
	Match(ctx context.Context, sess *session.Session, url string) ([]vault.Result, error)
	Export(ctx context.Context, sess *session.Session, w io.Writer) error
}

// Snapshot is the export format of a local vault. It holds ciphertext only.
type Snapshot struct {
	AccountID  string         `json:"accountId"`
	ExportedAt time.Time      `json:"exportedAt"`
	Entries    []models.Entry `json:"entries"`
}

type vaultService struct {
	store    store.EntryStore
	exporter client.Exporter
	download func(ctx context.Context, url string, w io.Writer) (int64, error)
	now      func() time.Time
}

// NewVaultService uses b for entries. Backends that implement
// client.Exporter publish exports themselves.
func NewVaultService(b store.EntryStore) VaultService {
	v := &vaultService{store: b, download: netx.DownloadPresignedURL, now: time.Now}
	if ex, ok := b.(client.Exporter); ok {
		v.exporter = ex
	}
	return v
}

// guard invalidates sess when err says the backend rejected it.
func guard(sess *session.Session, err error) error {
	if errors.Is(err, common.ErrUnauthenticated) || errors.Is(err, common.ErrInvalidToken) {
		sess.Invalidate()
	}
	return err
}

func (v *vaultService) Add(ctx context.Context, sess *session.Session, c vault.Credential) (models.Entry, error) {
	var env models.Entry
	err := sess.WithKey(func(key []byte) error {
		sealed, err := vault.Seal(c, key)
		if err != nil {
			return err
		}
		env = models.Entry{Data: sealed.Ciphertext, IV: sealed.IV}
		return nil
	})
	if err != nil {
		return models.Entry{}, err
	}

	e, err := v.store.AppendEntry(session.NewContext(ctx, sess), sess.AccountID(), env)
	if err != nil {
		return models.Entry{}, guard(sess, err)
	}
	return e, nil
}

func (v *vaultService) List(ctx context.Context, sess *session.Session) ([]vault.Result, error) {
	if !sess.Active() {
		return nil, common.ErrSessionClosed
	}

	entries, err := v.store.ListEntries(session.NewContext(ctx, sess), sess.AccountID())
	if err != nil {
		return nil, guard(sess, err)
	}

	var results []vault.Result
	err = sess.WithKey(func(key []byte) error {
		results = vault.OpenAll(ctx, entries, key)
		return nil
	})
	return results, err
}

func (v *vaultService) Update(ctx context.Context, sess *session.Session, id string, c vault.Credential) (models.Entry, error) {
	var resealed models.Entry
	err := sess.WithKey(func(key []byte) error {
		var err error
		resealed, err = vault.Reseal(models.Entry{ID: id}, c, key)
		return err
	})
	if err != nil {
		return models.Entry{}, err
	}

	e, err := v.store.UpdateEntry(session.NewContext(ctx, sess), sess.AccountID(), resealed)
	if err != nil {
		return models.Entry{}, guard(sess, err)
	}
	return e, nil
}

func (v *vaultService) Delete(ctx context.Context, sess *session.Session, id string) error {
	if !sess.Active() {
		return common.ErrSessionClosed
	}
	return guard(sess, v.store.DeleteEntry(session.NewContext(ctx, sess), sess.AccountID(), id))
}

func (v *vaultService) Match(ctx context.Context, sess *session.Session, url string) ([]vault.Result, error) {
	if _, err := vault.Origin(url); err != nil {
		return nil, err
	}

	results, err := v.List(ctx, sess)
	if err != nil {
		return nil, err
	}
	return vault.MatchOrigin(url, results)
}

// Export writes a ciphertext-only snapshot of the vault to w. A backend that
// publishes exports is asked for a download link; otherwise the snapshot is
// built from the entry list.
func (v *vaultService) Export(ctx context.Context, sess *session.Session, w io.Writer) error {
	if !sess.Active() {
		return common.ErrSessionClosed
	}
	ctx = session.NewContext(ctx, sess)

	if v.exporter != nil {
		link, err := v.exporter.Export(ctx)
		if err != nil {
			return guard(sess, err)
		}
		if _, err := v.download(ctx, link.URL, w); err != nil {
			return fmt.Errorf("export download: %w", err)
		}
		return nil
	}

	entries, err := v.store.ListEntries(ctx, sess.AccountID())
	if err != nil {
		return guard(sess, err)
	}
	if entries == nil {
		entries = []models.Entry{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Snapshot{AccountID: sess.AccountID(), ExportedAt: v.now().UTC(), Entries: entries})
}
