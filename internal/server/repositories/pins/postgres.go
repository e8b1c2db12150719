// Package pins provides the PostgreSQL-backed repository for map pins and
// their like counters.
package pins

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/avolkovs/pinpoint/internal/common"
	"github.com/avolkovs/pinpoint/internal/dbx"
	"github.com/avolkovs/pinpoint/internal/server/models"
)

// PostgresRepository implements pin storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByCreator(ctx context.Context, creatorID int64) ([]*models.Pin, error) {
	query := `SELECT id, creator_id, message, image, color, likes FROM pin
		 WHERE creator_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, creatorID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Pin{}
	for rows.Next() {
		var item models.Pin
		if err := rows.Scan(&item.ID, &item.CreatorID, &item.Message, &item.Image, &item.Color, &item.Likes); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Pin, error) {
	query := `SELECT id, creator_id, message, image, color, likes FROM pin
		 WHERE id = $1
		 `

	pin := &models.Pin{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&pin.ID, &pin.CreatorID, &pin.Message, &pin.Image, &pin.Color, &pin.Likes)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return pin, nil
}

func (r *PostgresRepository) Create(ctx context.Context, pin *models.Pin) (*models.Pin, error) {
	query := `INSERT INTO pin (creator_id, message, image, color)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, likes
		 `

	err := r.db.QueryRowContext(ctx, query,
		pin.CreatorID, pin.Message, pin.Image, pin.Color).Scan(&pin.ID, &pin.Likes)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return pin, nil
}

// Update applies only the fields present in the patch. A no-op patch returns
// without touching the database.
func (r *PostgresRepository) Update(ctx context.Context, id int64, patch *models.PinPatch) error {
	sets := []string{}
	args := []any{}

	if patch.Message != nil {
		args = append(args, *patch.Message)
		sets = append(sets, fmt.Sprintf("message = $%d", len(args)))
	}
	if patch.Image != nil {
		args = append(args, *patch.Image)
		sets = append(sets, fmt.Sprintf("image = $%d", len(args)))
	}
	if patch.Color != nil {
		args = append(args, *patch.Color)
		sets = append(sets, fmt.Sprintf("color = $%d", len(args)))
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE pin SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteOwned(ctx context.Context, id int64, creatorID int64) (int64, error) {
	query := `DELETE FROM pin WHERE id = $1 AND creator_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, creatorID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) GetLikes(ctx context.Context, id int64) (int64, error) {
	query := `SELECT likes FROM pin WHERE id = $1`

	var likes int64
	err := r.db.QueryRowContext(ctx, query, id).Scan(&likes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return likes, nil
}

func (r *PostgresRepository) IncrementLikes(ctx context.Context, id int64) error {
	query := `UPDATE pin SET likes = likes + 1 WHERE id = $1`
	return r.execCounter(ctx, query, id)
}

// DecrementLikes floors at zero so the counter never goes negative.
func (r *PostgresRepository) DecrementLikes(ctx context.Context, id int64) error {
	query := `UPDATE pin SET likes = GREATEST(likes - 1, 0) WHERE id = $1`
	return r.execCounter(ctx, query, id)
}

func (r *PostgresRepository) execCounter(ctx context.Context, query string, id int64) error {
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
