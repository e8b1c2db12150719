// Package posts provides the PostgreSQL-backed repository for community
// posts. Tags are stored comma-joined and converted at the repository edge,
// so everything above it sees []string.
package posts

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

// PostgresRepository implements post storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.Post, error) {
	query := `SELECT id, creator_id, title, location, category, tags, message, image, upvotes, created_at FROM post
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Post{}
	for rows.Next() {
		item, err := scanPost(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Post, error) {
	query := `SELECT id, creator_id, title, location, category, tags, message, image, upvotes, created_at FROM post
		 WHERE id = $1
		 `

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return post, nil
}

func (r *PostgresRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	query := `INSERT INTO post (creator_id, title, location, category, tags, message, image)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, upvotes, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		post.CreatorID, post.Title, post.Location, post.Category,
		models.JoinTags(post.Tags), post.Message, post.Image).
		Scan(&post.ID, &post.Upvotes, &post.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

// Update applies only the fields present in the patch. A no-op patch returns
// without touching the database.
func (r *PostgresRepository) Update(ctx context.Context, id int64, patch *models.PostPatch) error {
	sets := []string{}
	args := []any{}

	if patch.Title != nil {
		args = append(args, *patch.Title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if patch.Location != nil {
		args = append(args, *patch.Location)
		sets = append(sets, fmt.Sprintf("location = $%d", len(args)))
	}
	if patch.Category != nil {
		args = append(args, *patch.Category)
		sets = append(sets, fmt.Sprintf("category = $%d", len(args)))
	}
	if patch.Tags != nil {
		args = append(args, models.JoinTags(*patch.Tags))
		sets = append(sets, fmt.Sprintf("tags = $%d", len(args)))
	}
	if patch.Message != nil {
		args = append(args, *patch.Message)
		sets = append(sets, fmt.Sprintf("message = $%d", len(args)))
	}
	if patch.Image != nil {
		args = append(args, *patch.Image)
		sets = append(sets, fmt.Sprintf("image = $%d", len(args)))
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE post SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

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

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM post WHERE id = $1`

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

func (r *PostgresRepository) Upvote(ctx context.Context, id int64) (*models.Post, error) {
	query := `UPDATE post SET upvotes = upvotes + 1
		 WHERE id = $1
		 RETURNING id, creator_id, title, location, category, tags, message, image, upvotes, created_at
		 `

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return post, nil
}

func scanPost(scan func(dest ...any) error) (*models.Post, error) {
	var item models.Post
	var tags string
	if err := scan(&item.ID, &item.CreatorID, &item.Title, &item.Location, &item.Category,
		&tags, &item.Message, &item.Image, &item.Upvotes, &item.CreatedAt); err != nil {
		return nil, err
	}
	item.Tags = models.SplitTags(tags)
	return &item, nil
}
