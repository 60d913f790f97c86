package reservations

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avperez/hotelres/internal/common"
	"github.com/avperez/hotelres/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, value)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return d
}

var joinedCols = []string{
	"id", "date_debut", "date_fin", "preferences",
	"client_id", "nom", "prenom", "email", "telephone",
	"chambre_id", "type", "prix", "disponible",
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+reservation\s*\(client_id,\s*chambre_id,\s*date_debut,\s*date_fin,\s*preferences\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*RETURNING\s+id\s*$`

	debut := mustDate(t, "2026-09-01")
	fin := mustDate(t, "2026-09-05")

	rows := sqlmock.NewRows([]string{"id"}).AddRow(int64(3))
	mock.ExpectQuery(q).
		WithArgs(int64(1), int64(2), debut, fin, "vue mer").
		WillReturnRows(rows)

	res := &models.Reservation{
		Client:      &models.Client{ID: 1},
		Chambre:     &models.Chambre{ID: 2},
		DateDebut:   debut,
		DateFin:     fin,
		Preferences: "vue mer",
	}
	got, err := repo.Create(context.Background(), res)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 3 {
		t.Fatalf("unexpected reservation: %+v", got)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+reservation`).
		WillReturnError(errors.New("db down"))

	res := &models.Reservation{
		Client:  &models.Client{ID: 1},
		Chambre: &models.Chambre{ID: 2},
	}
	_, err := repo.Create(context.Background(), res)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+r\.id,.*FROM\s+reservation\s+r\s+JOIN\s+client\s+c\s+ON\s+r\.client_id\s*=\s*c\.id\s+JOIN\s+chambre\s+ch\s+ON\s+r\.chambre_id\s*=\s*ch\.id\s+WHERE\s+r\.id\s*=\s*\$1\s*$`

	debut := mustDate(t, "2026-09-01")
	fin := mustDate(t, "2026-09-05")

	rows := sqlmock.NewRows(joinedCols).AddRow(
		int64(3), debut, fin, "vue mer",
		int64(1), "Martin", "Sophie", "sophie.martin@example.com", "+33611223344",
		int64(2), "Suite", "249.50", true,
	)
	mock.ExpectQuery(q).WithArgs(int64(3)).WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.ID != 3 || got.Client.Nom != "Martin" || got.Chambre.Type != "Suite" {
		t.Fatalf("unexpected reservation: %+v", got)
	}
	if got.Chambre.Prix.StringFixed(2) != "249.50" {
		t.Fatalf("prix lost precision: %s", got.Chambre.Prix.StringFixed(2))
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+r\.id,`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByID_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+r\.id,`).
		WithArgs(int64(3)).
		WillReturnError(errors.New("db err"))

	_, err := repo.GetByID(context.Background(), 3)
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestUpdate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+reservation\s+SET\s+date_debut\s*=\s*\$1,\s*date_fin\s*=\s*\$2,\s*preferences\s*=\s*\$3\s+WHERE\s+id\s*=\s*\$4\s*$`

	debut := mustDate(t, "2026-09-02")
	fin := mustDate(t, "2026-09-06")

	mock.ExpectExec(q).
		WithArgs(debut, fin, "sans preferences", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), 3, debut, fin, "sans preferences"); err != nil {
		t.Fatalf("Update error: %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	debut := mustDate(t, "2026-09-02")
	fin := mustDate(t, "2026-09-06")

	mock.ExpectExec(`(?s)^UPDATE\s+reservation`).
		WithArgs(debut, fin, "", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), 99, debut, fin, "")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_Existing(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+reservation\s+WHERE\s+id\s*=\s*\$1\s*$`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.Delete(context.Background(), 3)
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if !deleted {
		t.Fatalf("want deleted=true")
	}
}

func TestDelete_Missing(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+reservation`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), 99)
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if deleted {
		t.Fatalf("want deleted=false for missing id")
	}
}

func TestDelete_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+reservation`).
		WithArgs(int64(3)).
		WillReturnError(errors.New("db down"))

	_, err := repo.Delete(context.Background(), 3)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestSelectAll_ReturnsAllRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+r\.id,.*ORDER\s+BY\s+r\.id\s*$`

	rows := sqlmock.NewRows(joinedCols).
		AddRow(
			int64(1), mustDate(t, "2026-09-01"), mustDate(t, "2026-09-05"), "vue mer",
			int64(1), "Martin", "Sophie", "sophie.martin@example.com", "+33611223344",
			int64(1), "Suite", "249.50", true,
		).
		AddRow(
			int64(2), mustDate(t, "2026-10-01"), mustDate(t, "2026-10-02"), "",
			int64(2), "Durand", "Paul", "paul.durand@example.com", "+33699887766",
			int64(2), "Simple", "89.00", false,
		)
	mock.ExpectQuery(q).WillReturnRows(rows)

	got, err := repo.SelectAll(context.Background())
	if err != nil {
		t.Fatalf("SelectAll error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 reservations, got %d", len(got))
	}
	if got[0].ID != 1 || got[1].Client.Nom != "Durand" {
		t.Fatalf("unexpected rows: %+v, %+v", got[0], got[1])
	}
}

func TestSelectAll_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+r\.id,`).
		WillReturnRows(sqlmock.NewRows(joinedCols))

	got, err := repo.SelectAll(context.Background())
	if err != nil {
		t.Fatalf("SelectAll error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("want empty result, got %d rows", len(got))
	}
}
