package pins

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

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

func pinColumns() []string {
	return []string{"id", "creator_id", "message", "image", "color", "likes"}
}

func TestListByCreator_ReturnsRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*creator_id,\s*message,\s*image,\s*color,\s*likes\s+FROM\s+pin\s+WHERE\s+creator_id\s*=\s*\$1\s+ORDER\s+BY\s+id\s*$`

	creator := int64(3)
	rows := sqlmock.NewRows(pinColumns()).
		AddRow(int64(1), &creator, "Great view", nil, nil, int64(0)).
		AddRow(int64(2), &creator, "Lunch spot", nil, nil, int64(4))
	mock.ExpectQuery(q).WithArgs(creator).WillReturnRows(rows)

	got, err := repo.ListByCreator(context.Background(), creator)
	if err != nil {
		t.Fatalf("ListByCreator error: %v", err)
	}
	if len(got) != 2 || got[0].Message != "Great view" || got[1].Likes != 4 {
		t.Fatalf("unexpected pins: %+v", got)
	}
}

func TestListByCreator_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*creator_id,\s*message`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(pinColumns()))

	got, err := repo.ListByCreator(context.Background(), 3)
	if err != nil {
		t.Fatalf("ListByCreator error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", got)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*creator_id,\s*message.*WHERE\s+id\s*=\s*\$1`).
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

	q := `(?s)^INSERT\s+INTO\s+pin\s*\(creator_id,\s*message,\s*image,\s*color\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+id,\s*likes\s*$`

	creator := int64(3)
	rows := sqlmock.NewRows([]string{"id", "likes"}).AddRow(int64(5), int64(0))
	mock.ExpectQuery(q).
		WithArgs(&creator, "Great view", nil, nil).
		WillReturnRows(rows)

	p := &models.Pin{CreatorID: &creator, Message: "Great view"}
	got, err := repo.Create(context.Background(), p)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 5 || got.Likes != 0 {
		t.Fatalf("unexpected pin: %+v", got)
	}
}

func TestUpdate_BuildsPartialSet(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+pin\s+SET\s+message\s*=\s*\$1,\s*color\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$3\s*$`

	msg := "Updated"
	color := "red"
	mock.ExpectExec(q).
		WithArgs(msg, color, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), 5, &models.PinPatch{Message: &msg, Color: &color})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestUpdate_EmptyPatchIsNoop(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	if err := repo.Update(context.Background(), 5, &models.PinPatch{}); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no SQL should have been issued: %v", err)
	}
}

func TestUpdate_NoRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	msg := "x"
	mock.ExpectExec(`(?s)^UPDATE\s+pin\s+SET\s+message`).
		WithArgs(msg, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), 99, &models.PinPatch{Message: &msg})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDeleteOwned_ChecksOwnershipInStatement(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+pin\s+WHERE\s+id\s*=\s*\$1\s+AND\s+creator_id\s*=\s*\$2\s*$`

	mock.ExpectExec(q).
		WithArgs(int64(5), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.DeleteOwned(context.Background(), 5, 3)
	if err != nil {
		t.Fatalf("DeleteOwned error: %v", err)
	}
	if n != 1 {
		t.Fatalf("want 1 row deleted, got %d", n)
	}
}

func TestDeleteOwned_WrongOwnerDeletesNothing(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+pin`).
		WithArgs(int64(5), int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := repo.DeleteOwned(context.Background(), 5, 4)
	if err != nil {
		t.Fatalf("DeleteOwned error: %v", err)
	}
	if n != 0 {
		t.Fatalf("want 0 rows deleted, got %d", n)
	}
}

func TestGetLikes_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+likes\s+FROM\s+pin\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectQuery(q).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"likes"}).AddRow(int64(2)))

	got, err := repo.GetLikes(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetLikes error: %v", err)
	}
	if got != 2 {
		t.Fatalf("want 2 likes, got %d", got)
	}
}

func TestGetLikes_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+likes\s+FROM\s+pin`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetLikes(context.Background(), 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestIncrementLikes_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+pin\s+SET\s+likes\s*=\s*likes\s*\+\s*1\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.IncrementLikes(context.Background(), 5); err != nil {
		t.Fatalf("IncrementLikes error: %v", err)
	}
}

func TestDecrementLikes_FloorsAtZero(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+pin\s+SET\s+likes\s*=\s*GREATEST\(likes\s*-\s*1,\s*0\)\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DecrementLikes(context.Background(), 5); err != nil {
		t.Fatalf("DecrementLikes error: %v", err)
	}
}

func TestIncrementLikes_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^UPDATE\s+pin\s+SET\s+likes`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.IncrementLikes(context.Background(), 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGet_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*creator_id`).
		WithArgs(int64(5)).
		WillReturnError(errors.New("db err"))

	_, err := repo.Get(context.Background(), 5)
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
