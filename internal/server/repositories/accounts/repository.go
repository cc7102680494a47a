// Package accounts persists account records in PostgreSQL.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/gophvault/internal/models"
)

type Repository interface {
	// Create returns common.ErrDuplicateAccount when the email is taken.
	Create(ctx context.Context, acc *models.Account) (*models.Account, error)
	// GetByEmail returns common.ErrAccountNotFound when absent.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
}
