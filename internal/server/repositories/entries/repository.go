// Package entries persists sealed vault entries in PostgreSQL. Every query
// is scoped by account id so accounts never see each other's rows.
package entries

import (
	"context"

	"github.com/dmitrijs2005/gophvault/internal/models"
)

type Repository interface {
	List(ctx context.Context, accountID string) ([]models.Entry, error)
	Create(ctx context.Context, accountID string, e models.Entry) (models.Entry, error)
	// Update returns common.ErrorNotFound when no row matches id and account.
	Update(ctx context.Context, accountID string, e models.Entry) (models.Entry, error)
	// Delete returns common.ErrorNotFound when no row matches id and account.
	Delete(ctx context.Context, accountID, entryID string) error
}
