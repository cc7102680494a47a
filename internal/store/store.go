// Package store defines the identity store contract shared by every backend
// (local SQLite, remote gRPC). Package storetest holds an in-memory one.
package store

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/gophvault/internal/models"
)

// AccountStore looks up and creates account records keyed by email.
type AccountStore interface {
	// FindAccount returns common.ErrAccountNotFound when email is unknown.
	FindAccount(ctx context.Context, email string) (*models.Account, error)
	// CreateAccount returns common.ErrDuplicateAccount when email is taken.
	CreateAccount(ctx context.Context, acc *models.Account) (*models.Account, error)
}

// EntryStore keeps the sealed entries of one account. Entries of different
// accounts never mix.
type EntryStore interface {
	ListEntries(ctx context.Context, accountID string) ([]models.Entry, error)
	// AppendEntry assigns ID and CreatedAt when they are empty.
	AppendEntry(ctx context.Context, accountID string, e models.Entry) (models.Entry, error)
	// UpdateEntry replaces Data and IV of an existing entry and stamps
	// UpdatedAt. Returns common.ErrorNotFound for an unknown id.
	UpdateEntry(ctx context.Context, accountID string, e models.Entry) (models.Entry, error)
	// DeleteEntry returns common.ErrorNotFound for an unknown id.
	DeleteEntry(ctx context.Context, accountID, entryID string) error
}

// IdentityStore is the full backend contract.
type IdentityStore interface {
	AccountStore
	EntryStore
}

// ExactLookup is implemented by account stores whose FindAccount reports an
// unknown email with common.ErrAccountNotFound. The remote store answers
// every lookup with a record, so it does not implement it.
type ExactLookup interface {
	AccountStore
	ExactLookup()
}

// NormalizeEmail is the key used for account lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
