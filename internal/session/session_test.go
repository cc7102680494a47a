package session

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) (*Session, []byte) {
	t.Helper()
	key := bytes.Repeat([]byte{9}, 32)
	want := bytes.Clone(key)
	s := New("acc-1", "alice@example.com", key, Tokens{Access: "a1", Refresh: "r1"})
	return s, want
}

func TestNew_WipesCallerKey(t *testing.T) {
	key := bytes.Repeat([]byte{9}, 32)
	_ = New("acc", "e@example.com", key, Tokens{})
	assert.Equal(t, make([]byte, 32), key)
}

func TestSession_WithKey(t *testing.T) {
	s, want := newTestSession(t)

	assert.True(t, s.Active())
	assert.Equal(t, "acc-1", s.AccountID())
	assert.Equal(t, "alice@example.com", s.Email())

	err := s.WithKey(func(key []byte) error {
		assert.Equal(t, want, key)
		return nil
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	assert.ErrorIs(t, s.WithKey(func([]byte) error { return boom }), boom)
}

func TestSession_Tokens(t *testing.T) {
	s, _ := newTestSession(t)

	tok, err := s.Tokens()
	require.NoError(t, err)
	assert.Equal(t, Tokens{Access: "a1", Refresh: "r1"}, tok)

	require.NoError(t, s.Rotate(Tokens{Access: "a2", Refresh: "r2"}))
	tok, err = s.Tokens()
	require.NoError(t, err)
	assert.Equal(t, "a2", tok.Access)
}

func TestSession_Invalidate(t *testing.T) {
	s, _ := newTestSession(t)

	s.Invalidate()
	s.Invalidate()

	assert.False(t, s.Active())
	assert.True(t, s.Closed())
	assert.ErrorIs(t, s.WithKey(func([]byte) error { return nil }), common.ErrSessionClosed)
	_, err := s.Tokens()
	assert.ErrorIs(t, err, common.ErrSessionClosed)
	assert.ErrorIs(t, s.Rotate(Tokens{Access: "x"}), common.ErrSessionClosed)
}

func TestSession_LockKeepsTokens(t *testing.T) {
	s, _ := newTestSession(t)

	s.Lock()
	assert.False(t, s.Active())
	assert.False(t, s.Closed())
	assert.ErrorIs(t, s.WithKey(func([]byte) error { return nil }), common.ErrSessionClosed)

	tok, err := s.Tokens()
	require.NoError(t, err)
	assert.Equal(t, Tokens{Access: "a1", Refresh: "r1"}, tok)

	require.NoError(t, s.Rotate(Tokens{Access: "a2", Refresh: "r2"}))
	tok, err = s.Tokens()
	require.NoError(t, err)
	assert.Equal(t, "r2", tok.Refresh)

	s.Invalidate()
	_, err = s.Tokens()
	assert.ErrorIs(t, err, common.ErrSessionClosed)
}

func TestSession_InvalidateDuringUse(t *testing.T) {
	s, want := newTestSession(t)

	started := make(chan struct{})
	release := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = s.WithKey(func(key []byte) error {
			close(started)
			<-release
			assert.Equal(t, want, key, "in-flight use keeps its copy")
			return nil
		})
	}()

	<-started
	s.Invalidate()
	close(release)
	wg.Wait()

	assert.ErrorIs(t, s.WithKey(func([]byte) error { return nil }), common.ErrSessionClosed)
}

func TestContext(t *testing.T) {
	s, _ := newTestSession(t)

	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	got, ok := FromContext(NewContext(context.Background(), s))
	require.True(t, ok)
	assert.Same(t, s, got)
}
