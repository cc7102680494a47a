package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/dbx"
	"github.com/dmitrijs2005/gophvault/internal/models"
)

// PostgresRepository implements Repository over dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns the entries of accountID in insertion order.
func (r *PostgresRepository) List(ctx context.Context, accountID string) ([]models.Entry, error) {
	query := `
		SELECT id, data, iv, created_at, updated_at
		FROM entries
		WHERE account_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Entry{}
	for rows.Next() {
		var (
			item      models.Entry
			updatedAt sql.NullTime
		)
		if err := rows.Scan(&item.ID, &item.Data, &item.IV, &item.CreatedAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if updatedAt.Valid {
			item.UpdatedAt = &updatedAt.Time
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Create inserts e. The id must already be assigned by the caller.
func (r *PostgresRepository) Create(ctx context.Context, accountID string, e models.Entry) (models.Entry, error) {
	query := `
		INSERT INTO entries (id, account_id, data, iv)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	if err := r.db.QueryRowContext(ctx, query, e.ID, accountID, e.Data, e.IV).Scan(&e.CreatedAt); err != nil {
		return models.Entry{}, fmt.Errorf("db error: %w", err)
	}
	e.UpdatedAt = nil
	return e, nil
}

func (r *PostgresRepository) Update(ctx context.Context, accountID string, e models.Entry) (models.Entry, error) {
	query := `
		UPDATE entries
		SET data = $3, iv = $4, updated_at = now()
		WHERE id = $1 AND account_id = $2
		RETURNING created_at, updated_at
	`
	var updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, e.ID, accountID, e.Data, e.IV).Scan(&e.CreatedAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Entry{}, common.ErrorNotFound
		}
		return models.Entry{}, fmt.Errorf("db error: %w", err)
	}
	e.UpdatedAt = &updatedAt.Time
	return e, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, accountID, entryID string) error {
	query := `
		DELETE FROM entries
		WHERE id = $1 AND account_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, entryID, accountID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
