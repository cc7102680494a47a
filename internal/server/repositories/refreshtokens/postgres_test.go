package refreshtokens

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	insertQuery  = `(?s)^\s*INSERT\s+INTO\s+refresh_tokens\s*\(account_id,\s*token,\s*expires_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*$`
	consumeQuery = `(?s)^\s*DELETE\s+FROM\s+refresh_tokens\s+WHERE\s+token\s*=\s*\$1\s+RETURNING\s+account_id,\s*expires_at\s*$`
	deleteQuery  = `(?s)^\s*DELETE\s+FROM\s+refresh_tokens\s+WHERE\s+token\s*=\s*\$1\s*$`
	expireQuery  = `(?s)^\s*DELETE\s+FROM\s+refresh_tokens\s+WHERE\s+expires_at\s*<\s*\$1\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	expires := time.Now().Add(time.Hour)

	mock.ExpectExec(insertQuery).WithArgs("acc", "tok123", expires).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Create(context.Background(), "acc", "tok123", expires))

	mock.ExpectExec(insertQuery).WillReturnError(errors.New("db down"))
	err := repo.Create(context.Background(), "acc", "tok123", expires)
	assert.Regexp(t, `db error: .*db down`, err.Error())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsume(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	expires := time.Now().Add(10 * time.Minute)

	mock.ExpectQuery(consumeQuery).WithArgs("tok123").
		WillReturnRows(sqlmock.NewRows([]string{"account_id", "expires_at"}).AddRow("acc", expires))

	got, err := repo.Consume(context.Background(), "tok123")
	require.NoError(t, err)
	assert.Equal(t, "acc", got.AccountID)
	assert.Equal(t, "tok123", got.Token)
	assert.True(t, got.Expires.Equal(expires))
}

func TestConsume_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(consumeQuery).WithArgs("missing").WillReturnError(sql.ErrNoRows)

	_, err := repo.Consume(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestConsume_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(consumeQuery).WithArgs("tok").WillReturnError(errors.New("db err"))

	_, err := repo.Consume(context.Background(), "tok")
	assert.Regexp(t, `db error: .*db err`, err.Error())
}

func TestDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(deleteQuery).WithArgs("tok123").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.NoError(t, repo.Delete(context.Background(), "tok123"), "unknown token is fine")

	mock.ExpectExec(deleteQuery).WithArgs("tok123").WillReturnError(errors.New("db err"))
	assert.Regexp(t, `db error: .*db err`, repo.Delete(context.Background(), "tok123").Error())
}

func TestDeleteExpired(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectExec(expireQuery).WithArgs(now).WillReturnResult(sqlmock.NewResult(0, 3))
	n, err := repo.DeleteExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	mock.ExpectExec(expireQuery).WithArgs(now).WillReturnError(errors.New("db err"))
	_, err = repo.DeleteExpired(context.Background(), now)
	assert.Error(t, err)
}
