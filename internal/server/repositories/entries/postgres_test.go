package entries

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/picdiary/internal/common"
	"github.com/dmitrijs2005/picdiary/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var columns = []string{"id", "username", "sequence_number", "title", "body", "entry_date", "created_at", "image_key"}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO diary_entries \(username, sequence_number, title, body, entry_date, created_at, image_key\) VALUES \(\$1, \$2, \$3, \$4, \$5, \$6, \$7\) RETURNING id`).
		WithArgs("alice", 3, "Seaside", "A calm day.", date, created, "images/k").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(17)))

	e := &models.DiaryEntry{
		Owner: "alice", SequenceNumber: 3, Title: "Seaside", Body: "A calm day.",
		EntryDate: date, CreatedAt: created, ImageKey: "images/k",
	}
	if err := repo.Create(context.Background(), e); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if e.ID != 17 {
		t.Fatalf("id not set: %+v", e)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_NoImageStoresNull(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO diary_entries`).
		WithArgs("alice", 1, "t", "b", sqlmock.AnyArg(), sqlmock.AnyArg(), nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	if err := repo.Create(context.Background(), &models.DiaryEntry{Owner: "alice", SequenceNumber: 1, Title: "t", Body: "b"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO diary_entries`).WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), &models.DiaryEntry{Owner: "alice", SequenceNumber: 1})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGet_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT id, username, sequence_number, title, body, entry_date, created_at, image_key FROM diary_entries WHERE username = \$1 AND sequence_number = \$2`).
		WithArgs("alice", 2).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(5), "alice", 2, "T", "B", date, date, nil))

	e, err := repo.Get(context.Background(), "alice", 2)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if e.SequenceNumber != 2 || e.Title != "T" || e.HasImage() {
		t.Fatalf("unexpected entry: %+v", e)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM diary_entries WHERE username = \$1 AND sequence_number = \$2`).
		WithArgs("bob", 2).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "bob", 2)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestExists(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("alice", 4).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.Exists(context.Background(), "alice", 4)
	if err != nil || !ok {
		t.Fatalf("Exists = %v, %v", ok, err)
	}
}

func TestList_Ordered(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT .* FROM diary_entries WHERE username = \$1 ORDER BY sequence_number`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), "alice", 1, "a", "A", d, d, "k1").
			AddRow(int64(3), "alice", 3, "c", "C", d, d, nil))

	got, err := repo.List(context.Background(), "alice")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].ImageKey != "k1" || got[1].SequenceNumber != 3 || got[1].HasImage() {
		t.Fatalf("unexpected entries: %+v %+v", got[0], got[1])
	}
}

func TestList_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM diary_entries`).WillReturnError(errors.New("boom"))

	if _, err := repo.List(context.Background(), "alice"); err == nil {
		t.Fatal("expected error")
	}
}

func TestUpdateText(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `UPDATE diary_entries SET title = \$3, body = \$4 WHERE username = \$1 AND sequence_number = \$2`
	mock.ExpectExec(q).WithArgs("alice", 2, "new", "body").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("alice", 9, "new", "body").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.UpdateText(context.Background(), "alice", 2, "new", "body"); err != nil {
		t.Fatalf("UpdateText error: %v", err)
	}
	if err := repo.UpdateText(context.Background(), "alice", 9, "new", "body"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `DELETE FROM diary_entries WHERE username = \$1 AND sequence_number = \$2 RETURNING image_key`
	mock.ExpectQuery(q).WithArgs("alice", 2).WillReturnRows(sqlmock.NewRows([]string{"image_key"}).AddRow("k2"))
	mock.ExpectQuery(q).WithArgs("alice", 3).WillReturnRows(sqlmock.NewRows([]string{"image_key"}).AddRow(nil))
	mock.ExpectQuery(q).WithArgs("alice", 4).WillReturnError(sql.ErrNoRows)

	key, err := repo.Delete(context.Background(), "alice", 2)
	if err != nil || key != "k2" {
		t.Fatalf("Delete = %q, %v", key, err)
	}
	key, err = repo.Delete(context.Background(), "alice", 3)
	if err != nil || key != "" {
		t.Fatalf("Delete = %q, %v", key, err)
	}
	if _, err := repo.Delete(context.Background(), "alice", 4); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestShiftDown(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE diary_entries SET sequence_number = sequence_number - 1 WHERE username = \$1 AND sequence_number > \$2`).
		WithArgs("alice", 2).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.ShiftDown(context.Background(), "alice", 2)
	if err != nil || n != 3 {
		t.Fatalf("ShiftDown = %d, %v", n, err)
	}
}
