package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newTurfMock(t *testing.T) (*TurfRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewTurfRepo(db), mock
}

func turfRows(t *testing.T) *sqlmock.Rows {
	t.Helper()
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "name", "location", "sports", "rating", "price_per_hour", "image_url", "created_at", "updated_at"}).
		AddRow(1, "Green Valley Sports Complex", "Bangalore", "Football,Cricket", 4.5, 150000, "", now, now)
}

func TestTurfSearch_NoFilter(t *testing.T) {
	repo, mock := newTurfMock(t)

	mock.ExpectQuery("SELECT " + turfColumns + " FROM turfs ORDER BY rating DESC, id").
		WillReturnRows(turfRows(t))

	out, err := repo.Search(context.Background(), TurfFilter{})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Green Valley Sports Complex" {
		t.Fatalf("unexpected result: %+v", out)
	}
	if got := out[0].SportsList(); len(got) != 2 || got[0] != "Football" || got[1] != "Cricket" {
		t.Fatalf("unexpected sports: %v", got)
	}
}

func TestTurfSearch_AllFilters(t *testing.T) {
	repo, mock := newTurfMock(t)

	mock.ExpectQuery("SELECT "+turfColumns+" FROM turfs WHERE FIND_IN_SET(?, sports) > 0 AND LOWER(location) = LOWER(?) AND name LIKE ? ORDER BY rating DESC, id").
		WithArgs("Football", "Bangalore", "%Green%").
		WillReturnRows(turfRows(t))

	out, err := repo.Search(context.Background(), TurfFilter{Sport: "Football", Location: "Bangalore", Query: "Green"})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 turf, got %d", len(out))
	}
}

func TestTurfDelete_UpcomingBookingsConflict(t *testing.T) {
	repo, mock := newTurfMock(t)

	mock.ExpectQuery("SELECT COUNT(*) FROM bookings WHERE turf_id = ? AND status = 'upcoming'").
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(2))

	err := repo.Delete(context.Background(), 1)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestTurfDelete_NotFound(t *testing.T) {
	repo, mock := newTurfMock(t)

	mock.ExpectQuery("SELECT COUNT(*) FROM bookings WHERE turf_id = ? AND status = 'upcoming'").
		WithArgs(uint64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectExec("DELETE FROM turfs WHERE id = ?").
		WithArgs(uint64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 9)
	if !errors.Is(err, ErrTurfNotFound) {
		t.Fatalf("expected ErrTurfNotFound, got %v", err)
	}
}
