package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/Ankur-Sh/Expense-Tracker-Chart/internal/models"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

func setupUserMock(t *testing.T) (*PostgresUserRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewPostgresUserRepository(db)
	cleanup := func() { db.Close() }
	return repo, mock, cleanup
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	user := models.User{ID: "u1", Username: "alice", PasswordHash: "$2a$10$hash"}
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users (id, username, password_hash) VALUES ($1, $2, $3)`)).
		WithArgs(user.ID, user.Username, user.PasswordHash).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCreateUser_Duplicate(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	user := models.User{ID: "u2", Username: "alice", PasswordHash: "$2a$10$hash"}
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users (id, username, password_hash) VALUES ($1, $2, $3)`)).
		WithArgs(user.ID, user.Username, user.PasswordHash).
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.CreateUser(context.Background(), user)
	if !errors.Is(err, models.ErrDuplicateUsername) {
		t.Errorf("CreateUser error = %v; want ErrDuplicateUsername", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCreateUser_Error(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	user := models.User{ID: "u3", Username: "bob", PasswordHash: "$2a$10$hash"}
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users (id, username, password_hash) VALUES ($1, $2, $3)`)).
		WithArgs(user.ID, user.Username, user.PasswordHash).
		WillReturnError(errors.New("insert failed"))

	err := repo.CreateUser(context.Background(), user)
	if err == nil {
		t.Error("expected error, got nil")
	}
	if errors.Is(err, models.ErrDuplicateUsername) {
		t.Errorf("generic failure reported as duplicate: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestUserByUsername_Found(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "username", "password_hash"}).
		AddRow("u1", "alice", "$2a$10$hash")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, password_hash FROM users WHERE username = $1`)).
		WithArgs("alice").
		WillReturnRows(rows)

	user, err := repo.UserByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u1" || user.Username != "alice" || user.PasswordHash != "$2a$10$hash" {
		t.Errorf("unexpected user: %+v", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestUserByUsername_NotFound(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, password_hash FROM users WHERE username = $1`)).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}))

	_, err := repo.UserByUsername(context.Background(), "ghost")
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("UserByUsername error = %v; want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
