package repomanager

import (
	"context"
	"database/sql"

	"github.com/avolkovs/pinpoint/internal/dbx"
	"github.com/avolkovs/pinpoint/internal/server/repositories/accounts"
	"github.com/avolkovs/pinpoint/internal/server/repositories/comments"
	"github.com/avolkovs/pinpoint/internal/server/repositories/pins"
	"github.com/avolkovs/pinpoint/internal/server/repositories/posts"
	"github.com/avolkovs/pinpoint/internal/server/repositories/shares"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Pins(db dbx.DBTX) pins.Repository
	Posts(db dbx.DBTX) posts.Repository
	Comments(db dbx.DBTX) comments.Repository
	Shares(db dbx.DBTX) shares.Repository
}
