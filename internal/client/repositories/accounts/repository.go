// Package accounts keeps account records in the local SQLite vault so the
// client can unlock without a server.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/gophvault/internal/models"
)

type Repository interface {
	// Create assigns ID and CreatedAt. A taken email yields
	// common.ErrDuplicateAccount.
	Create(ctx context.Context, acc *models.Account) (*models.Account, error)
	// GetByEmail returns common.ErrAccountNotFound when absent.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
}
