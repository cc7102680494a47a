package metadata

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/client/migrations"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "vault.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(migrations.Migrations)
	require.NoError(t, goose.SetDialect("sqlite3"))
	require.NoError(t, goose.Up(db, "."))
	return db
}

func TestSettings_Lifecycle(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, ok, err := r.Get(ctx, "last_email")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.Put(ctx, "last_email", "alice@example.com"))
	v, ok, err := r.Get(ctx, "last_email")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice@example.com", v)

	require.NoError(t, r.Delete(ctx, "last_email"))
	_, ok, err = r.Get(ctx, "last_email")
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting twice is fine
	require.NoError(t, r.Delete(ctx, "last_email"))
}

func TestSettings_PutReplacesValueAndStamp(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	first := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return first }
	require.NoError(t, r.Put(ctx, "theme", "dark"))

	r.now = func() time.Time { return first.Add(time.Hour) }
	require.NoError(t, r.Put(ctx, "theme", "light"))

	v, _, err := r.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", v)

	var rows int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM settings`).Scan(&rows))
	assert.Equal(t, 1, rows)

	var stamp time.Time
	require.NoError(t, db.QueryRow(`SELECT updated_at FROM settings WHERE name = 'theme'`).Scan(&stamp))
	assert.True(t, stamp.Equal(first.Add(time.Hour)), "got %v", stamp)
}

func TestSettings_ClosedDB(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	_, _, err := r.Get(ctx, "k")
	assert.ErrorContains(t, err, `failed to select setting "k"`)
	assert.ErrorContains(t, r.Put(ctx, "k", "v"), `failed to store setting "k"`)
	assert.ErrorContains(t, r.Delete(ctx, "k"), `failed to delete setting "k"`)
}
