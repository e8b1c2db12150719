package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/avolkovs/pinpoint/internal/common"
	"github.com/avolkovs/pinpoint/internal/server/models"
	"github.com/avolkovs/pinpoint/internal/server/repositories/repomanager"
)

// PostService implements board post operations. Posts without a creator are
// community-owned: any authenticated caller may edit or delete them.
type PostService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPostService(db *sql.DB, m repomanager.RepositoryManager) *PostService {
	return &PostService{db: db, repomanager: m}
}

// ListAll returns every post on the board, newest first.
func (s *PostService) ListAll(ctx context.Context) ([]*models.Post, error) {
	repo := s.repomanager.Posts(s.db)
	posts, err := repo.ListAll(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return posts, nil
}

// Get returns a single post by id.
func (s *PostService) Get(ctx context.Context, id int64) (*models.Post, error) {
	repo := s.repomanager.Posts(s.db)
	post, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return post, nil
}

// Create stores a new post. Title, location, and message are required; the
// category defaults when omitted and tags default to an empty list.
func (s *PostService) Create(ctx context.Context, accountID int64, post *models.Post) (*models.Post, error) {
	if strings.TrimSpace(post.Title) == "" ||
		strings.TrimSpace(post.Location) == "" ||
		strings.TrimSpace(post.Message) == "" {
		return nil, common.ErrorValidation
	}
	if strings.TrimSpace(post.Category) == "" {
		post.Category = models.DefaultPostCategory
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	post.CreatorID = &accountID

	repo := s.repomanager.Posts(s.db)
	p, err := repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}
	return p, nil
}

// Update applies a partial update to a post. Owned posts may only be changed
// by their creator; ownerless posts accept changes from anyone.
func (s *PostService) Update(ctx context.Context, accountID, id int64, patch *models.PostPatch) (*models.Post, error) {
	repo := s.repomanager.Posts(s.db)
	post, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	if post.CreatorID != nil && *post.CreatorID != accountID {
		return nil, common.ErrorForbidden
	}
	if patch.IsEmpty() {
		return post, nil
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

// Delete removes a post, subject to the same ownership rule as Update.
func (s *PostService) Delete(ctx context.Context, accountID, id int64) error {
	repo := s.repomanager.Posts(s.db)
	post, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}
	if post.CreatorID != nil && *post.CreatorID != accountID {
		return common.ErrorForbidden
	}
	if err := repo.Delete(ctx, id); err != nil {
		return common.ErrorInternal
	}
	return nil
}

// Upvote increments a post's upvote counter and returns the updated post.
func (s *PostService) Upvote(ctx context.Context, id int64) (*models.Post, error) {
	repo := s.repomanager.Posts(s.db)
	post, err := repo.Upvote(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return post, nil
}
