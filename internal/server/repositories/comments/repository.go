package comments

import (
	"context"

	"github.com/avolkovs/pinpoint/internal/server/models"
)

type Repository interface {
	ListByPin(ctx context.Context, pinID int64) ([]*models.Comment, error)
	// Get returns the comment joined with its author's email.
	Get(ctx context.Context, id int64) (*models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	Update(ctx context.Context, id int64, body string) error
	Delete(ctx context.Context, id int64) error
}
