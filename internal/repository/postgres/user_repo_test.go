package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventup/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"id", "email", "name", "password_hash", "salt", "created_at", "updated_at"}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO users \(email, name, password_hash, salt, created_at, updated_at\)`).
			WithArgs("new@example.com", "New User", "hash", "salt", now, now).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-1"))

		repo := NewUserRepository(db)
		u := domain.NewUser("new@example.com", "New User", now, now)
		u.PasswordHash = "hash"
		u.Salt = "salt"
		require.NoError(t, repo.Create(ctx, u))
		require.Equal(t, "user-1", u.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(&pq.Error{Code: "23505"})

		repo := NewUserRepository(db)
		u := domain.NewUser("dup@example.com", "Dup", now, now)
		err = repo.Create(ctx, u)
		require.True(t, errors.Is(err, domain.ErrDuplicateEmail))
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, email, name, password_hash, salt, created_at, updated_at`).
			WithArgs("user@example.com").
			WillReturnRows(sqlmock.NewRows(userCols).
				AddRow("user-1", "user@example.com", "User", "hash", "salt", now, now))

		repo := NewUserRepository(db)
		u, err := repo.GetByEmail(ctx, "user@example.com")
		require.NoError(t, err)
		require.Equal(t, "user-1", u.ID)
		require.Equal(t, "hash", u.PasswordHash)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, email, name, password_hash, salt, created_at, updated_at`).
			WithArgs("missing@example.com").
			WillReturnRows(sqlmock.NewRows(userCols))

		repo := NewUserRepository(db)
		u, err := repo.GetByEmail(ctx, "missing@example.com")
		require.True(t, errors.Is(err, domain.ErrUserNotFound))
		require.Nil(t, u)
	})
}
