package posts

import (
	"context"

	"github.com/avolkovs/pinpoint/internal/server/models"
)

type Repository interface {
	ListAll(ctx context.Context) ([]*models.Post, error)
	Get(ctx context.Context, id int64) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	Update(ctx context.Context, id int64, patch *models.PostPatch) error
	Delete(ctx context.Context, id int64) error
	// Upvote bumps the counter by one and returns the updated row.
	Upvote(ctx context.Context, id int64) (*models.Post, error)
}
