// Package storetest provides an in-memory identity store for tests of code
// written against package store.
package storetest

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/models"
	"github.com/dmitrijs2005/gophvault/internal/store"
	"github.com/google/uuid"
)

// MemoryStore is a store.IdentityStore held in process memory. Accounts are
// keyed by normalized email and entries by account id, in separate maps.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]models.Account
	entries  map[string][]models.Entry
	now      func() time.Time
}

var (
	_ store.IdentityStore = (*MemoryStore)(nil)
	_ store.ExactLookup   = (*MemoryStore)(nil)
)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[string]models.Account),
		entries:  make(map[string][]models.Entry),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// ExactLookup marks FindAccount as reporting unknown emails.
func (s *MemoryStore) ExactLookup() {}

func (s *MemoryStore) FindAccount(ctx context.Context, email string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[store.NormalizeEmail(email)]
	if !ok {
		return nil, common.ErrAccountNotFound
	}
	return &acc, nil
}

func (s *MemoryStore) CreateAccount(ctx context.Context, acc *models.Account) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := store.NormalizeEmail(acc.Email)
	if _, ok := s.accounts[key]; ok {
		return nil, common.ErrDuplicateAccount
	}

	stored := *acc
	stored.Email = key
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = s.now()
	}
	s.accounts[key] = stored
	return &stored, nil
}

func (s *MemoryStore) ListEntries(ctx context.Context, accountID string) ([]models.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.entries[accountID]), nil
}

func (s *MemoryStore) AppendEntry(ctx context.Context, accountID string, e models.Entry) (models.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}
	e.UpdatedAt = nil
	s.entries[accountID] = append(s.entries[accountID], e)
	return e, nil
}

func (s *MemoryStore) UpdateEntry(ctx context.Context, accountID string, e models.Entry) (models.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.entries[accountID]
	i := slices.IndexFunc(list, func(x models.Entry) bool { return x.ID == e.ID })
	if i < 0 {
		return models.Entry{}, common.ErrorNotFound
	}

	now := s.now()
	cur := list[i]
	cur.Data = e.Data
	cur.IV = e.IV
	cur.UpdatedAt = &now
	list[i] = cur
	return cur, nil
}

func (s *MemoryStore) DeleteEntry(ctx context.Context, accountID, entryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.entries[accountID]
	i := slices.IndexFunc(list, func(x models.Entry) bool { return x.ID == entryID })
	if i < 0 {
		return common.ErrorNotFound
	}
	s.entries[accountID] = slices.Delete(list, i, i+1)
	return nil
}
