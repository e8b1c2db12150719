// Package shares provides the PostgreSQL-backed repository for saved
// itinerary snapshots.
package shares

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avolkovs/pinpoint/internal/common"
	"github.com/avolkovs/pinpoint/internal/dbx"
	"github.com/avolkovs/pinpoint/internal/server/models"
)

// PostgresRepository implements share storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, share *models.Share) error {
	query := `INSERT INTO itinerary (id, data)
		 VALUES ($1, $2)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query, share.ID, []byte(share.Data)).Scan(&share.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Share, error) {
	query := `SELECT id, data, created_at FROM itinerary
		 WHERE id = $1
		 `

	share := &models.Share{}
	var data []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(&share.ID, &data, &share.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	share.Data = data

	return share, nil
}
