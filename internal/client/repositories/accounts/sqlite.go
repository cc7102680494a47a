package accounts

import (
	"context"
	"database/sql"
	"encoding/json"
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

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

func (r *SQLiteRepository) Create(ctx context.Context, acc *models.Account) (*models.Account, error) {
	params, err := json.Marshal(acc.KDFParams)
	if err != nil {
		return nil, fmt.Errorf("kdf params: %w", err)
	}

	c := *acc
	c.ID = uuid.NewString()
	c.CreatedAt = r.now().UTC()

	query := `INSERT INTO accounts (id, email, salt, kdf_params, auth_tag_data, auth_tag_iv, verifier, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		c.ID, c.Email, c.Salt, string(params), c.AuthTagData, c.AuthTagIV, c.Verifier, c.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrDuplicateAccount
		}
		return nil, fmt.Errorf("failed to insert account: %w", err)
	}
	return &c, nil
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `SELECT id, email, salt, kdf_params, auth_tag_data, auth_tag_iv, verifier, created_at
		FROM accounts WHERE email = ?`

	acc := &models.Account{}
	var params string
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&acc.ID, &acc.Email, &acc.Salt, &params, &acc.AuthTagData, &acc.AuthTagIV, &acc.Verifier, &acc.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to select account: %w", err)
	}

	if err := json.Unmarshal([]byte(params), &acc.KDFParams); err != nil {
		return nil, fmt.Errorf("kdf params: %w", err)
	}
	return acc, nil
}
