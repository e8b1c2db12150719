package comments

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avolkovs/pinpoint/internal/common"
	"github.com/avolkovs/pinpoint/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func commentColumns() []string {
	return []string{"id", "pin_id", "account_id", "comment", "created_at", "email"}
}

func TestListByPin_JoinsAuthorEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+c\.id,\s*c\.pin_id,\s*c\.account_id,\s*c\.comment,\s*c\.created_at,\s*a\.email\s+FROM\s+comment\s+c\s+JOIN\s+account\s+a\s+ON\s+a\.id\s*=\s*c\.account_id\s+WHERE\s+c\.pin_id\s*=\s*\$1\s+ORDER\s+BY\s+c\.created_at\s+DESC\s*$`

	now := time.Now()
	rows := sqlmock.NewRows(commentColumns()).
		AddRow(int64(2), int64(1), int64(3), "Nice spot", now, "alice@example.com").
		AddRow(int64(1), int64(1), int64(4), "Agreed", now.Add(-time.Minute), "bob@example.com")
	mock.ExpectQuery(q).WithArgs(int64(1)).WillReturnRows(rows)

	got, err := repo.ListByPin(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByPin error: %v", err)
	}
	if len(got) != 2 || got[0].Email != "alice@example.com" {
		t.Fatalf("unexpected comments: %+v", got)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+c\.id,.*WHERE\s+c\.id\s*=\s*\$1`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+comment\s*\(pin_id,\s*account_id,\s*comment\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*created_at\s*$`

	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), time.Now())
	mock.ExpectQuery(q).
		WithArgs(int64(1), int64(3), "Nice spot").
		WillReturnRows(rows)

	c := &models.Comment{PinID: 1, AccountID: 3, Comment: "Nice spot"}
	got, err := repo.Create(context.Background(), c)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 7 {
		t.Fatalf("unexpected comment: %+v", got)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+comment`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Comment{PinID: 1, AccountID: 3, Comment: "x"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestUpdate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+comment\s+SET\s+comment\s*=\s*\$1\s+WHERE\s+id\s*=\s*\$2\s*$`

	mock.ExpectExec(q).
		WithArgs("Edited", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), 7, "Edited"); err != nil {
		t.Fatalf("Update error: %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^UPDATE\s+comment\s+SET\s+comment`).
		WithArgs("x", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), 99, "x")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+comment\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 7); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+comment`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
