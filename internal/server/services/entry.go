package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/dmitrijs2005/gophvault/internal/models"
	"github.com/dmitrijs2005/gophvault/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// EntryService stores sealed entries. It never sees plaintext; it only checks
// that an entry carries ciphertext and an IV.
type EntryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewEntryService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *EntryService {
	return &EntryService{db: db, repomanager: m, logger: l.With("module", "entry_service")}
}

func checkEntry(e models.Entry) error {
	if strings.TrimSpace(e.Data) == "" || strings.TrimSpace(e.IV) == "" {
		return common.ErrInvalidRecord
	}
	return nil
}

func (s *EntryService) List(ctx context.Context, accountID string) ([]models.Entry, error) {
	list, err := s.repomanager.Entries(s.db).List(ctx, accountID)
	if err != nil {
		s.logger.Error(ctx, "entry list failed", common.AccountIDKey, accountID, "error", err)
		return nil, common.ErrorInternal
	}
	return list, nil
}

// Add stores e under a freshly generated id.
func (s *EntryService) Add(ctx context.Context, accountID string, e models.Entry) (models.Entry, error) {
	if err := checkEntry(e); err != nil {
		return models.Entry{}, err
	}
	e.ID = uuid.NewString()

	created, err := s.repomanager.Entries(s.db).Create(ctx, accountID, e)
	if err != nil {
		s.logger.Error(ctx, "entry create failed", common.AccountIDKey, accountID, "error", err)
		return models.Entry{}, common.ErrorInternal
	}
	return created, nil
}

// knownID reports whether id could name a stored entry. Ids are UUIDs, so
// anything else is simply not found.
func knownID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (s *EntryService) Update(ctx context.Context, accountID string, e models.Entry) (models.Entry, error) {
	if e.ID == "" {
		return models.Entry{}, common.ErrInvalidRecord
	}
	if err := checkEntry(e); err != nil {
		return models.Entry{}, err
	}
	if !knownID(e.ID) {
		return models.Entry{}, common.ErrorNotFound
	}

	updated, err := s.repomanager.Entries(s.db).Update(ctx, accountID, e)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return models.Entry{}, err
		}
		s.logger.Error(ctx, "entry update failed", common.AccountIDKey, accountID, "error", err)
		return models.Entry{}, common.ErrorInternal
	}
	return updated, nil
}

func (s *EntryService) Delete(ctx context.Context, accountID, entryID string) error {
	if !knownID(entryID) {
		return common.ErrorNotFound
	}
	err := s.repomanager.Entries(s.db).Delete(ctx, accountID, entryID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		s.logger.Error(ctx, "entry delete failed", common.AccountIDKey, accountID, "error", err)
		return common.ErrorInternal
	}
	return nil
}
