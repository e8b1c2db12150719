package pins

import (
	"context"

	"github.com/avolkovs/pinpoint/internal/server/models"
)

type Repository interface {
	ListByCreator(ctx context.Context, creatorID int64) ([]*models.Pin, error)
	Get(ctx context.Context, id int64) (*models.Pin, error)
	Create(ctx context.Context, pin *models.Pin) (*models.Pin, error)
	Update(ctx context.Context, id int64, patch *models.PinPatch) error
	// DeleteOwned removes the pin only when it belongs to creatorID; the
	// ownership check is part of the DELETE statement itself. Returns the
	// number of rows removed.
	DeleteOwned(ctx context.Context, id int64, creatorID int64) (int64, error)
	GetLikes(ctx context.Context, id int64) (int64, error)
	IncrementLikes(ctx context.Context, id int64) error
	DecrementLikes(ctx context.Context, id int64) error
}
