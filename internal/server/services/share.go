package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/avolkovs/pinpoint/internal/common"
	"github.com/avolkovs/pinpoint/internal/server/models"
	"github.com/avolkovs/pinpoint/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// ShareService stores itinerary snapshots under random ids so they can be
// fetched later from a share link.
type ShareService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewShareService(db *sql.DB, m repomanager.RepositoryManager) *ShareService {
	return &ShareService{db: db, repomanager: m}
}

// Create saves the snapshot payload and returns the stored share with its
// generated id.
func (s *ShareService) Create(ctx context.Context, data json.RawMessage) (*models.Share, error) {
	if len(data) == 0 || !json.Valid(data) {
		return nil, common.ErrorValidation
	}
	share := &models.Share{ID: uuid.NewString(), Data: data}
	repo := s.repomanager.Shares(s.db)
	if err := repo.Create(ctx, share); err != nil {
		return nil, fmt.Errorf("error creating share: %w", err)
	}
	return share, nil
}

// Get returns a previously stored snapshot by id.
func (s *ShareService) Get(ctx context.Context, id string) (*models.Share, error) {
	repo := s.repomanager.Shares(s.db)
	share, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return share, nil
}
