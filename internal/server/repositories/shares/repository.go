package shares

import (
	"context"

	"github.com/avolkovs/pinpoint/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, share *models.Share) error
	Get(ctx context.Context, id string) (*models.Share, error)
}
