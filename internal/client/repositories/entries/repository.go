// Package entries stores sealed vault entries in the local SQLite database.
// Rows only ever hold ciphertext and IVs; every query is scoped by account.
package entries

import (
	"context"

	"github.com/dmitrijs2005/gophvault/internal/models"
)

type Repository interface {
	// List returns the entries of accountID in insertion order.
	List(ctx context.Context, accountID string) ([]models.Entry, error)
	// Create assigns ID (when empty) and CreatedAt.
	Create(ctx context.Context, accountID string, e models.Entry) (models.Entry, error)
	// Update returns common.ErrorNotFound when no row matches id and account.
	Update(ctx context.Context, accountID string, e models.Entry) (models.Entry, error)
	// Delete returns common.ErrorNotFound when no row matches id and account.
	Delete(ctx context.Context, accountID, entryID string) error
}
