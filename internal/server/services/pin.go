package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/avolkovs/pinpoint/internal/common"
	"github.com/avolkovs/pinpoint/internal/dbx"
	"github.com/avolkovs/pinpoint/internal/server/models"
	"github.com/avolkovs/pinpoint/internal/server/repositories/repomanager"
)

// PinService implements pin lifecycle operations. Mutations require the
// caller to own the pin; reads are open to any authenticated caller.
type PinService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPinService(db *sql.DB, m repomanager.RepositoryManager) *PinService {
	return &PinService{db: db, repomanager: m}
}

// ListOwn returns the pins created by the given account, newest first.
func (s *PinService) ListOwn(ctx context.Context, accountID int64) ([]*models.Pin, error) {
	repo := s.repomanager.Pins(s.db)
	pins, err := repo.ListByCreator(ctx, accountID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return pins, nil
}

// Get returns a single pin by id.
func (s *PinService) Get(ctx context.Context, id int64) (*models.Pin, error) {
	repo := s.repomanager.Pins(s.db)
	pin, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return pin, nil
}

// Create stores a new pin owned by the caller. The message is required.
func (s *PinService) Create(ctx context.Context, accountID int64, message string, image, color *string) (*models.Pin, error) {
	if strings.TrimSpace(message) == "" {
		return nil, common.ErrorValidation
	}
	pin := &models.Pin{CreatorID: &accountID, Message: message, Image: image, Color: color}
	repo := s.repomanager.Pins(s.db)
	p, err := repo.Create(ctx, pin)
	if err != nil {
		return nil, fmt.Errorf("error creating pin: %w", err)
	}
	return p, nil
}

// Update applies a partial update to a pin the caller owns and returns the
// updated row. An empty patch is a no-op read.
func (s *PinService) Update(ctx context.Context, accountID, id int64, patch *models.PinPatch) (*models.Pin, error) {
	repo := s.repomanager.Pins(s.db)
	pin, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	if pin.CreatorID == nil || *pin.CreatorID != accountID {
		return nil, common.ErrorForbidden
	}
	if patch.IsEmpty() {
		return pin, nil
	}
	if err := repo.Update(ctx, id, patch); err != nil {
		return nil, common.ErrorInternal
	}
	updated, err := repo.Get(ctx, id)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return updated, nil
}

// Delete removes a pin the caller owns. The ownership check and the delete
// run in one transaction, so a concurrent owner change cannot slip through.
// Pins without an owner are not deletable over the API.
func (s *PinService) Delete(ctx context.Context, accountID, id int64) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Pins(tx)
		pin, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if pin.CreatorID == nil {
			return common.ErrorForbidden
		}
		n, err := repo.DeleteOwned(ctx, id, accountID)
		if err != nil {
			return err
		}
		if n == 0 {
			return common.ErrorForbidden
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorForbidden) {
			return err
		}
		return common.ErrorInternal
	}
	return nil
}

// GetLikes returns the current like count for a pin.
func (s *PinService) GetLikes(ctx context.Context, id int64) (int64, error) {
	repo := s.repomanager.Pins(s.db)
	likes, err := repo.GetLikes(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return 0, common.ErrorNotFound
		}
		return 0, common.ErrorInternal
	}
	return likes, nil
}

// Like increments a pin's like counter and returns the new count.
func (s *PinService) Like(ctx context.Context, id int64) (int64, error) {
	repo := s.repomanager.Pins(s.db)
	if err := repo.IncrementLikes(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return 0, common.ErrorNotFound
		}
		return 0, common.ErrorInternal
	}
	likes, err := repo.GetLikes(ctx, id)
	if err != nil {
		return 0, common.ErrorInternal
	}
	return likes, nil
}

// Unlike decrements a pin's like counter, never going below zero.
func (s *PinService) Unlike(ctx context.Context, id int64) (int64, error) {
	repo := s.repomanager.Pins(s.db)
	if err := repo.DecrementLikes(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return 0, common.ErrorNotFound
		}
		return 0, common.ErrorInternal
	}
	likes, err := repo.GetLikes(ctx, id)
	if err != nil {
		return 0, common.ErrorInternal
	}
	return likes, nil
}
