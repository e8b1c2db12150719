// Package comments provides the PostgreSQL-backed repository for pin
// comments. Reads join the author's email for display.
package comments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avolkovs/pinpoint/internal/common"
	"github.com/avolkovs/pinpoint/internal/dbx"
	"github.com/avolkovs/pinpoint/internal/server/models"
)

// PostgresRepository implements comment storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByPin(ctx context.Context, pinID int64) ([]*models.Comment, error) {
	query := `SELECT c.id, c.pin_id, c.account_id, c.comment, c.created_at, a.email
		 FROM comment c
		 JOIN account a ON a.id = c.account_id
		 WHERE c.pin_id = $1
		 ORDER BY c.created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, pinID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Comment{}
	for rows.Next() {
		var item models.Comment
		if err := rows.Scan(&item.ID, &item.PinID, &item.AccountID, &item.Comment, &item.CreatedAt, &item.Email); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Comment, error) {
	query := `SELECT c.id, c.pin_id, c.account_id, c.comment, c.created_at, a.email
		 FROM comment c
		 JOIN account a ON a.id = c.account_id
		 WHERE c.id = $1
		 `

	comment := &models.Comment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.PinID, &comment.AccountID, &comment.Comment, &comment.CreatedAt, &comment.Email)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return comment, nil
}

func (r *PostgresRepository) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	query := `INSERT INTO comment (pin_id, account_id, comment)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		comment.PinID, comment.AccountID, comment.Comment).Scan(&comment.ID, &comment.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return comment, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, body string) error {
	query := `UPDATE comment SET comment = $1 WHERE id = $2`

	res, err := r.db.ExecContext(ctx, query, body, id)
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
	query := `DELETE FROM comment WHERE id = $1`

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
