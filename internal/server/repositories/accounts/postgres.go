package accounts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/dbx"
	"github.com/dmitrijs2005/gophvault/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, acc *models.Account) (*models.Account, error) {
	params, err := json.Marshal(acc.KDFParams)
	if err != nil {
		return nil, fmt.Errorf("kdf params: %w", err)
	}

	query :=
		`INSERT INTO accounts (email, salt, kdf_params, auth_tag_data, auth_tag_iv, verifier)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`

	err = r.db.QueryRowContext(ctx, query,
		acc.Email, acc.Salt, params, acc.AuthTagData, acc.AuthTagIV, acc.Verifier).
		Scan(&acc.ID, &acc.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrDuplicateAccount
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return acc, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query :=
		`SELECT id, email, salt, kdf_params, auth_tag_data, auth_tag_iv, verifier, created_at
		 FROM accounts
		 WHERE email = $1`

	acc := &models.Account{}
	var params []byte
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&acc.ID, &acc.Email, &acc.Salt, &params, &acc.AuthTagData, &acc.AuthTagIV, &acc.Verifier, &acc.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrAccountNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := json.Unmarshal(params, &acc.KDFParams); err != nil {
		return nil, fmt.Errorf("kdf params: %w", err)
	}

	return acc, nil
}
