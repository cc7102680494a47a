package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/dbx"
	"github.com/dmitrijs2005/gophvault/internal/models"
	"github.com/google/uuid"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db  dbx.DBTX
	now func() time.Time
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

func (r *SQLiteRepository) List(ctx context.Context, accountID string) ([]models.Entry, error) {
	query := `SELECT id, data, iv, created_at, updated_at FROM entries WHERE account_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	result := []models.Entry{}
	for rows.Next() {
		var (
			item      models.Entry
			updatedAt sql.NullTime
		)
		if err := rows.Scan(&item.ID, &item.Data, &item.IV, &item.CreatedAt, &updatedAt); err != nil {
			return nil, err
		}
		if updatedAt.Valid {
			item.UpdatedAt = &updatedAt.Time
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create appends e after the account's last entry.
func (r *SQLiteRepository) Create(ctx context.Context, accountID string, e models.Entry) (models.Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = r.now().UTC()
	}
	e.UpdatedAt = nil

	query := `INSERT INTO entries (id, account_id, seq, data, iv, created_at)
		VALUES (?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM entries WHERE account_id = ?), ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, e.ID, accountID, accountID, e.Data, e.IV, e.CreatedAt)
	if err != nil {
		return models.Entry{}, fmt.Errorf("failed to insert entry: %w", err)
	}
	return e, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, accountID string, e models.Entry) (models.Entry, error) {
	updatedAt := r.now().UTC()

	query := `UPDATE entries SET data = ?, iv = ?, updated_at = ? WHERE id = ? AND account_id = ? RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query, e.Data, e.IV, updatedAt, e.ID, accountID).Scan(&e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Entry{}, common.ErrorNotFound
		}
		return models.Entry{}, fmt.Errorf("failed to update entry: %w", err)
	}
	e.UpdatedAt = &updatedAt
	return e, nil
}

// Delete removes the row. It expects exactly one row to be affected.
func (r *SQLiteRepository) Delete(ctx context.Context, accountID, entryID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ? AND account_id = ?`, entryID, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return common.ErrorNotFound
	}
	return nil
}
