// Package refreshtokens stores the opaque refresh tokens issued at login.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/server/models"
)

type Repository interface {
	// Create stores token for accountID, valid until expires.
	Create(ctx context.Context, accountID, token string, expires time.Time) error

	// Consume deletes token and returns what it was bound to, so a token can
	// be redeemed at most once. Unknown tokens yield common.ErrorNotFound.
	Consume(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete removes token. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteExpired purges tokens that expired before the given time.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
