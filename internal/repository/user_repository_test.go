package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMock(t *testing.T) (*UserRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewUserRepo(db), mock
}

func TestUserRepoCreate_NormalizesEmail(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("INSERT INTO users (name, email, password_hash, role) VALUES (?,?,?,?)").
		WithArgs("Jane Doe", "jane@x.com", "digest", "user").
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := repo.Create(context.Background(), "Jane Doe", "  JANE@X.com ", "digest", "user")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if id != 7 {
		t.Fatalf("id mismatch: got %d want 7", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepoCreate_DuplicateKeyMapsToErrEmailExists(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("INSERT INTO users (name, email, password_hash, role) VALUES (?,?,?,?)").
		WithArgs("Jane Doe", "jane@x.com", "digest", "user").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'jane@x.com' for key 'users.uq_users_email'"))

	_, err := repo.Create(context.Background(), "Jane Doe", "jane@x.com", "digest", "user")
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestUserRepoGetByEmail(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "created_at", "updated_at"}).
		AddRow(3, "Jane Doe", "jane@x.com", "digest", "user", now, now)
	mock.ExpectQuery("SELECT id,name,email,password_hash,role,created_at,updated_at FROM users WHERE email=? LIMIT 1").
		WithArgs("jane@x.com").
		WillReturnRows(rows)

	u, err := repo.GetByEmail(context.Background(), "JANE@x.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if u.ID != 3 || u.Email != "jane@x.com" || u.PasswordHash != "digest" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestUserRepoGetByEmail_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT id,name,email,password_hash,role,created_at,updated_at FROM users WHERE email=? LIMIT 1").
		WithArgs("nobody@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByEmail(context.Background(), "nobody@x.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepoGetByID_OmitsHash(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "role", "created_at", "updated_at"}).
		AddRow(3, "Jane Doe", "jane@x.com", "user", now, now)
	mock.ExpectQuery("SELECT id,name,email,role,created_at,updated_at FROM users WHERE id=? LIMIT 1").
		WithArgs(uint64(3)).
		WillReturnRows(rows)

	u, err := repo.GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if u.PasswordHash != "" {
		t.Fatalf("profile lookup must not select the password hash, got %q", u.PasswordHash)
	}
}
