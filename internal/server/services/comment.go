package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/avolkovs/pinpoint/internal/common"
	"github.com/avolkovs/pinpoint/internal/server/models"
	"github.com/avolkovs/pinpoint/internal/server/repositories/repomanager"
)

// CommentService implements comments attached to pins. A comment may only be
// edited or removed by its author.
type CommentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCommentService(db *sql.DB, m repomanager.RepositoryManager) *CommentService {
	return &CommentService{db: db, repomanager: m}
}

// validateBody trims the comment body and enforces the length bounds. The
// trimmed body is returned so callers store the normalized form.
func validateBody(body string) (string, error) {
	body = strings.TrimSpace(body)
	if body == "" || utf8.RuneCountInString(body) > models.MaxCommentLength {
		return "", common.ErrorValidation
	}
	return body, nil
}

// ListByPin returns the comments on a pin, newest first. The pin must exist.
func (s *CommentService) ListByPin(ctx context.Context, pinID int64) ([]*models.Comment, error) {
	if _, err := s.repomanager.Pins(s.db).Get(ctx, pinID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	repo := s.repomanager.Comments(s.db)
	comments, err := repo.ListByPin(ctx, pinID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return comments, nil
}

// Create attaches a new comment to a pin, authored by the caller.
func (s *CommentService) Create(ctx context.Context, accountID, pinID int64, body string) (*models.Comment, error) {
	body, err := validateBody(body)
	if err != nil {
		return nil, err
	}
	if _, err := s.repomanager.Pins(s.db).Get(ctx, pinID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	repo := s.repomanager.Comments(s.db)
	c, err := repo.Create(ctx, &models.Comment{PinID: pinID, AccountID: accountID, Comment: body})
	if err != nil {
		return nil, fmt.Errorf("error creating comment: %w", err)
	}
	// reread to pick up the author email join
	created, err := repo.Get(ctx, c.ID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return created, nil
}

// Update replaces the body of a comment the caller authored.
func (s *CommentService) Update(ctx context.Context, accountID, id int64, body string) (*models.Comment, error) {
	body, err := validateBody(body)
	if err != nil {
		return nil, err
	}
	repo := s.repomanager.Comments(s.db)
	c, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	if c.AccountID != accountID {
		return nil, common.ErrorForbidden
	}
	if err := repo.Update(ctx, id, body); err != nil {
		return nil, common.ErrorInternal
	}
	updated, err := repo.Get(ctx, id)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return updated, nil
}

// Delete removes a comment the caller authored.
func (s *CommentService) Delete(ctx context.Context, accountID, id int64) error {
	repo := s.repomanager.Comments(s.db)
	c, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}
	if c.AccountID != accountID {
		return common.ErrorForbidden
	}
	if err := repo.Delete(ctx, id); err != nil {
		return common.ErrorInternal
	}
	return nil
}
