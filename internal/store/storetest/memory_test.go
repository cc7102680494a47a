package storetest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Accounts(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.FindAccount(ctx, "a@example.com")
	assert.ErrorIs(t, err, common.ErrAccountNotFound)

	created, err := s.CreateAccount(ctx, &models.Account{Email: " A@Example.com ", Salt: "00"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "a@example.com", created.Email)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := s.FindAccount(ctx, "a@example.COM")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = s.CreateAccount(ctx, &models.Account{Email: "a@example.com"})
	assert.ErrorIs(t, err, common.ErrDuplicateAccount)
}

func TestMemoryStore_EntriesLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	e1, err := s.AppendEntry(ctx, "acc1", models.Entry{Data: "aa", IV: "01"})
	require.NoError(t, err)
	assert.NotEmpty(t, e1.ID)
	assert.Equal(t, fixed, e1.CreatedAt)
	assert.Nil(t, e1.UpdatedAt)

	e2, err := s.AppendEntry(ctx, "acc1", models.Entry{Data: "bb", IV: "02"})
	require.NoError(t, err)

	list, err := s.ListEntries(ctx, "acc1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, e1.ID, list[0].ID)
	assert.Equal(t, e2.ID, list[1].ID)

	other, err := s.ListEntries(ctx, "acc2")
	require.NoError(t, err)
	assert.Empty(t, other)

	upd, err := s.UpdateEntry(ctx, "acc1", models.Entry{ID: e1.ID, Data: "cc", IV: "03"})
	require.NoError(t, err)
	assert.Equal(t, e1.ID, upd.ID)
	assert.Equal(t, "cc", upd.Data)
	assert.Equal(t, e1.CreatedAt, upd.CreatedAt)
	require.NotNil(t, upd.UpdatedAt)

	_, err = s.UpdateEntry(ctx, "acc2", models.Entry{ID: e1.ID, Data: "dd", IV: "04"})
	assert.ErrorIs(t, err, common.ErrorNotFound, "entries of another account are invisible")

	require.NoError(t, s.DeleteEntry(ctx, "acc1", e2.ID))
	assert.ErrorIs(t, s.DeleteEntry(ctx, "acc1", e2.ID), common.ErrorNotFound)

	list, err = s.ListEntries(ctx, "acc1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "cc", list[0].Data)
}

func TestMemoryStore_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_, err := s.AppendEntry(ctx, "acc", models.Entry{Data: "aa", IV: "01"})
	require.NoError(t, err)

	list, _ := s.ListEntries(ctx, "acc")
	list[0].Data = "mutated"

	again, _ := s.ListEntries(ctx, "acc")
	assert.Equal(t, "aa", again[0].Data)
}

func TestMemoryStore_ConcurrentCreateSameEmail(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.CreateAccount(ctx, &models.Account{Email: "race@example.com"}); err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, success)
}
