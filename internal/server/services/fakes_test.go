package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avolkovs/pinpoint/internal/dbx"
	"github.com/avolkovs/pinpoint/internal/server/models"
	accountsrepo "github.com/avolkovs/pinpoint/internal/server/repositories/accounts"
	commentsrepo "github.com/avolkovs/pinpoint/internal/server/repositories/comments"
	pinsrepo "github.com/avolkovs/pinpoint/internal/server/repositories/pins"
	postsrepo "github.com/avolkovs/pinpoint/internal/server/repositories/posts"
	sharesrepo "github.com/avolkovs/pinpoint/internal/server/repositories/shares"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeAccountsRepo struct {
	createOut *models.Account
	createErr error

	byEmailOut *models.Account
	byEmailErr error

	byIDOut *models.Account
	byIDErr error
}

func (f *fakeAccountsRepo) Create(ctx context.Context, a *models.Account) (*models.Account, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}
func (f *fakeAccountsRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}
func (f *fakeAccountsRepo) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

type fakePinsRepo struct {
	listOut []*models.Pin
	listErr error

	getOut *models.Pin
	getErr error

	createOut *models.Pin
	createErr error

	updateErr error

	deleteN   int64
	deleteErr error

	likesOut int64
	likesErr error

	incErr error
	decErr error

	updateCalled bool
	incCalls     int
	decCalls     int
}

func (f *fakePinsRepo) ListByCreator(ctx context.Context, creatorID int64) ([]*models.Pin, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}
func (f *fakePinsRepo) Get(ctx context.Context, id int64) (*models.Pin, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}
func (f *fakePinsRepo) Create(ctx context.Context, p *models.Pin) (*models.Pin, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}
func (f *fakePinsRepo) Update(ctx context.Context, id int64, patch *models.PinPatch) error {
	f.updateCalled = true
	return f.updateErr
}
func (f *fakePinsRepo) DeleteOwned(ctx context.Context, id int64, creatorID int64) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	return f.deleteN, nil
}
func (f *fakePinsRepo) GetLikes(ctx context.Context, id int64) (int64, error) {
	if f.likesErr != nil {
		return 0, f.likesErr
	}
	return f.likesOut, nil
}
func (f *fakePinsRepo) IncrementLikes(ctx context.Context, id int64) error {
	f.incCalls++
	return f.incErr
}
func (f *fakePinsRepo) DecrementLikes(ctx context.Context, id int64) error {
	f.decCalls++
	return f.decErr
}

type fakePostsRepo struct {
	listOut []*models.Post
	listErr error

	getOut *models.Post
	getErr error

	createOut *models.Post
	createErr error

	updateErr error
	deleteErr error

	upvoteOut *models.Post
	upvoteErr error

	createIn     *models.Post
	updateCalled bool
	deleteCalled bool
}

func (f *fakePostsRepo) ListAll(ctx context.Context) ([]*models.Post, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}
func (f *fakePostsRepo) Get(ctx context.Context, id int64) (*models.Post, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}
func (f *fakePostsRepo) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	f.createIn = p
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}
func (f *fakePostsRepo) Update(ctx context.Context, id int64, patch *models.PostPatch) error {
	f.updateCalled = true
	return f.updateErr
}
func (f *fakePostsRepo) Delete(ctx context.Context, id int64) error {
	f.deleteCalled = true
	return f.deleteErr
}
func (f *fakePostsRepo) Upvote(ctx context.Context, id int64) (*models.Post, error) {
	if f.upvoteErr != nil {
		return nil, f.upvoteErr
	}
	return f.upvoteOut, nil
}

type fakeCommentsRepo struct {
	listOut []*models.Comment
	listErr error

	getOut *models.Comment
	getErr error

	createOut *models.Comment
	createErr error

	updateErr error
	deleteErr error

	deleteCalled bool
}

func (f *fakeCommentsRepo) ListByPin(ctx context.Context, pinID int64) ([]*models.Comment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}
func (f *fakeCommentsRepo) Get(ctx context.Context, id int64) (*models.Comment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}
func (f *fakeCommentsRepo) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}
func (f *fakeCommentsRepo) Update(ctx context.Context, id int64, body string) error {
	return f.updateErr
}
func (f *fakeCommentsRepo) Delete(ctx context.Context, id int64) error {
	f.deleteCalled = true
	return f.deleteErr
}

type fakeSharesRepo struct {
	createErr error

	getOut *models.Share
	getErr error

	createIn *models.Share
}

func (f *fakeSharesRepo) Create(ctx context.Context, s *models.Share) error {
	f.createIn = s
	return f.createErr
}
func (f *fakeSharesRepo) Get(ctx context.Context, id string) (*models.Share, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeRepoManager struct {
	accounts *fakeAccountsRepo
	pins     *fakePinsRepo
	posts    *fakePostsRepo
	comments *fakeCommentsRepo
	shares   *fakeSharesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error   { return nil }
func (m *fakeRepoManager) Accounts(db dbx.DBTX) accountsrepo.Repository   { return m.accounts }
func (m *fakeRepoManager) Pins(db dbx.DBTX) pinsrepo.Repository           { return m.pins }
func (m *fakeRepoManager) Posts(db dbx.DBTX) postsrepo.Repository         { return m.posts }
func (m *fakeRepoManager) Comments(db dbx.DBTX) commentsrepo.Repository   { return m.comments }
func (m *fakeRepoManager) Shares(db dbx.DBTX) sharesrepo.Repository       { return m.shares }
