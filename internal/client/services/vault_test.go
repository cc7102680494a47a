package services

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/client/client"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/session"
	"github.com/dmitrijs2005/gophvault/internal/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unlocked(t *testing.T, b *fakeBackend) *session.Session {
	t.Helper()
	auth := NewAuthService(b, fastParams(), discardLogger())
	ctx := context.Background()

	_, err := auth.Register(ctx, "alice@example.com", "correct horse battery")
	require.NoError(t, err)
	sess, err := auth.Login(ctx, "alice@example.com", "correct horse battery")
	require.NoError(t, err)
	return sess
}

func TestVaultService_AddListUpdateDelete(t *testing.T) {
	b := newFakeBackend()
	sess := unlocked(t, b)
	svc := NewVaultService(b)
	ctx := context.Background()

	cred := vault.Credential{Website: "https://example.com/login", Username: "alice", Password: "s3cret"}
	e, err := svc.Add(ctx, sess, cred)
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.NotContains(t, e.Data, "s3cret")

	results, err := svc.List(ctx, sess)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.Equal(t, cred, results[0].Credential)
	assert.True(t, b.sawSession, "store calls must carry the session")

	cred.Password = "n3w"
	updated, err := svc.Update(ctx, sess, e.ID, cred)
	require.NoError(t, err)
	assert.Equal(t, e.ID, updated.ID)
	assert.NotEqual(t, e.IV, updated.IV)
	require.NotNil(t, updated.UpdatedAt)

	results, err = svc.List(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, "n3w", results[0].Credential.Password)

	_, err = svc.Update(ctx, sess, "missing", cred)
	require.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, svc.Delete(ctx, sess, e.ID))
	require.ErrorIs(t, svc.Delete(ctx, sess, e.ID), common.ErrorNotFound)

	results, err = svc.List(ctx, sess)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestVaultService_Match(t *testing.T) {
	b := newFakeBackend()
	sess := unlocked(t, b)
	svc := NewVaultService(b)
	ctx := context.Background()

	for _, site := range []string{"https://example.com/a", "https://sub.example.com", "http://example.com", "https://EXAMPLE.com:443/b"} {
		_, err := svc.Add(ctx, sess, vault.Credential{Website: site, Username: "u", Password: "p"})
		require.NoError(t, err)
	}

	got, err := svc.Match(ctx, sess, "https://example.com/login?next=1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "https://example.com/a", got[0].Credential.Website)
	assert.Equal(t, "https://EXAMPLE.com:443/b", got[1].Credential.Website)

	_, err = svc.Match(ctx, sess, "not a url")
	require.ErrorIs(t, err, vault.ErrInvalidURL)
}

func TestVaultService_ClosedSession(t *testing.T) {
	b := newFakeBackend()
	sess := unlocked(t, b)
	svc := NewVaultService(b)
	ctx := context.Background()
	sess.Invalidate()

	_, err := svc.Add(ctx, sess, vault.Credential{Website: "https://x.io"})
	require.ErrorIs(t, err, common.ErrSessionClosed)
	_, err = svc.List(ctx, sess)
	require.ErrorIs(t, err, common.ErrSessionClosed)
	_, err = svc.Update(ctx, sess, "id", vault.Credential{})
	require.ErrorIs(t, err, common.ErrSessionClosed)
	require.ErrorIs(t, svc.Delete(ctx, sess, "id"), common.ErrSessionClosed)
	require.ErrorIs(t, svc.Export(ctx, sess, &bytes.Buffer{}), common.ErrSessionClosed)
}

func TestVaultService_UnauthenticatedInvalidatesSession(t *testing.T) {
	b := newFakeBackend()
	sess := unlocked(t, b)
	svc := NewVaultService(b)

	b.entriesErr = common.ErrUnauthenticated
	_, err := svc.List(context.Background(), sess)
	require.ErrorIs(t, err, common.ErrUnauthenticated)
	assert.False(t, sess.Active())
}

func TestVaultService_OtherErrorsKeepSession(t *testing.T) {
	b := newFakeBackend()
	sess := unlocked(t, b)
	svc := NewVaultService(b)

	b.entriesErr = common.ErrStoreUnavailable
	_, err := svc.List(context.Background(), sess)
	require.ErrorIs(t, err, common.ErrStoreUnavailable)
	assert.True(t, sess.Active())
}

func TestVaultService_ExportLocalSnapshot(t *testing.T) {
	b := newFakeBackend()
	sess := unlocked(t, b)
	v := NewVaultService(b).(*vaultService)
	fixed := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	v.now = func() time.Time { return fixed }
	ctx := context.Background()

	var empty bytes.Buffer
	require.NoError(t, v.Export(ctx, sess, &empty))
	assert.Contains(t, empty.String(), `"entries": []`)

	e, err := v.Add(ctx, sess, vault.Credential{Website: "https://example.com", Password: "s3cret"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, v.Export(ctx, sess, &buf))
	assert.NotContains(t, buf.String(), "s3cret")

	var snap Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &snap))
	assert.Equal(t, sess.AccountID(), snap.AccountID)
	assert.True(t, fixed.Equal(snap.ExportedAt))
	require.Len(t, snap.Entries, 1)
	assert.Equal(t, e.ID, snap.Entries[0].ID)
	assert.Equal(t, e.Data, snap.Entries[0].Data)
}

func TestVaultService_ExportDownloadsPublishedSnapshot(t *testing.T) {
	payload := `{"accountId":"remote","entries":[]}`
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer ts.Close()

	fb := newFakeBackend()
	sess := unlocked(t, fb)
	b := &exportingBackend{fakeBackend: fb, link: &client.ExportLink{URL: ts.URL + "/exports/x.json", ExpiresAt: time.Now().Add(time.Minute)}}
	svc := NewVaultService(b)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), sess, &buf))
	assert.Equal(t, payload, buf.String())
}

func TestVaultService_ExportRejectedSessionIsInvalidated(t *testing.T) {
	fb := newFakeBackend()
	sess := unlocked(t, fb)
	b := &exportingBackend{fakeBackend: fb, err: common.ErrUnauthenticated}
	svc := NewVaultService(b)

	err := svc.Export(context.Background(), sess, &bytes.Buffer{})
	require.ErrorIs(t, err, common.ErrUnauthenticated)
	assert.False(t, sess.Active())
}
