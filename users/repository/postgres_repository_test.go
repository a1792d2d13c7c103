// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/joblyhq/jobly/internal/database/sqlutil"
	"github.com/joblyhq/jobly/internal/testutil"
	userErrors "github.com/joblyhq/jobly/users/errors"
	"github.com/joblyhq/jobly/users/models"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var userRow = []string{"username", "first_name", "last_name", "email", "is_admin"}

func q(s string) string { return regexp.QuoteMeta(s) }

func TestPostgresRepository_Create(t *testing.T) {
	ctx := context.Background()
	user := &models.User{Username: "new", Password: "$2a$hash", FirstName: "Test", LastName: "Tester", Email: "test@test.com"}

	t.Run("stores the hash and returns no password", func(t *testing.T) {
		client, mock := testutil.NewMockClient(t)
		repo := NewPostgresRepository(client)

		mock.ExpectQuery(q(`SELECT username FROM users WHERE username = $1`)).WithArgs("new").WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(q(`INSERT INTO users (username, password, first_name, last_name, email, is_admin)`)).
			WithArgs("new", "$2a$hash", "Test", "Tester", "test@test.com", false).
			WillReturnRows(sqlmock.NewRows(userRow).AddRow("new", "Test", "Tester", "test@test.com", false))

		created, err := repo.Create(ctx, user)
		require.NoError(t, err)
		require.Equal(t, "new", created.Username)
		require.Empty(t, created.Password)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate username", func(t *testing.T) {
		client, mock := testutil.NewMockClient(t)
		repo := NewPostgresRepository(client)

		mock.ExpectQuery(q(`SELECT username FROM users`)).WillReturnRows(sqlmock.NewRows([]string{"username"}).AddRow("new"))

		_, err := repo.Create(ctx, user)
		require.ErrorIs(t, err, userErrors.ErrDuplicateUser)
	})

	t.Run("unique violation", func(t *testing.T) {
		client, mock := testutil.NewMockClient(t)
		repo := NewPostgresRepository(client)

		mock.ExpectQuery(q(`SELECT username FROM users`)).WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(q(`INSERT INTO users`)).WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.Create(ctx, user)
		require.ErrorIs(t, err, userErrors.ErrDuplicateUser)
	})
}

func TestPostgresRepository_FindCredentials(t *testing.T) {
	ctx := context.Background()
	client, mock := testutil.NewMockClient(t)
	repo := NewPostgresRepository(client)

	mock.ExpectQuery(q(`SELECT username, first_name, last_name, email, is_admin, password FROM users WHERE username = $1`)).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(append(userRow, "password")).AddRow("u1", "U1F", "U1L", "u1@email.com", false, "$2a$hash"))
	mock.ExpectQuery(q(`FROM users WHERE username = $1`)).WithArgs("nope").WillReturnError(sql.ErrNoRows)

	user, err := repo.FindCredentials(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, "$2a$hash", user.Password)

	_, err = repo.FindCredentials(ctx, "nope")
	require.ErrorIs(t, err, userErrors.ErrUserNotFound)
}

func TestPostgresRepository_FindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("ordered by username", func(t *testing.T) {
		client, mock := testutil.NewMockClient(t)
		repo := NewPostgresRepository(client)

		mock.ExpectQuery(`FROM users ORDER BY username$`).
			WillReturnRows(sqlmock.NewRows(userRow).
				AddRow("u1", "U1F", "U1L", "u1@email.com", false).
				AddRow("u2", "U2F", "U2L", "u2@email.com", true))

		users, err := repo.FindAll(ctx, sqlutil.FieldSet{})
		require.NoError(t, err)
		require.Len(t, users, 2)
		require.True(t, users[1].IsAdmin)
	})

	t.Run("filters are not supported", func(t *testing.T) {
		client, _ := testutil.NewMockClient(t)
		repo := NewPostgresRepository(client)

		_, err := repo.FindAll(ctx, sqlutil.NewFieldSet(sqlutil.Field{Key: "username", Value: "u1"}))
		require.ErrorIs(t, err, userErrors.ErrUnknownFilter)
	})
}

func TestPostgresRepository_Get(t *testing.T) {
	ctx := context.Background()
	client, mock := testutil.NewMockClient(t)
	repo := NewPostgresRepository(client)

	mock.ExpectQuery(q(`FROM users WHERE username = $1`)).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(userRow).AddRow("u1", "U1F", "U1L", "u1@email.com", false))
	mock.ExpectQuery(q(`SELECT job_id FROM applications WHERE username = $1 ORDER BY job_id`)).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"job_id"}).AddRow(1).AddRow(3))

	user, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, user.Jobs)
	require.Equal(t, "U1F", user.FirstName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Update(t *testing.T) {
	ctx := context.Background()
	client, mock := testutil.NewMockClient(t)
	repo := NewPostgresRepository(client)

	mock.ExpectQuery(q(`UPDATE users SET "first_name"=$1, "password"=$2, "is_admin"=$3 WHERE username = $4 RETURNING username`)).
		WithArgs("New", "$2a$hash", true, "u1").
		WillReturnRows(sqlmock.NewRows(userRow).AddRow("u1", "New", "U1L", "u1@email.com", true))

	user, err := repo.Update(ctx, "u1", sqlutil.NewFieldSet(
		sqlutil.Field{Key: "firstName", Value: "New"},
		sqlutil.Field{Key: "password", Value: "$2a$hash"},
		sqlutil.Field{Key: "isAdmin", Value: true},
	))
	require.NoError(t, err)
	require.Equal(t, "New", user.FirstName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Remove(t *testing.T) {
	ctx := context.Background()
	client, mock := testutil.NewMockClient(t)
	repo := NewPostgresRepository(client)

	mock.ExpectQuery(q(`DELETE FROM users WHERE username = $1 RETURNING username`)).WithArgs("nope").WillReturnError(sql.ErrNoRows)

	_, err := repo.Remove(ctx, "nope")
	require.ErrorIs(t, err, userErrors.ErrUserNotFound)
}

func TestPostgresRepository_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts inside a transaction", func(t *testing.T) {
		client, mock := testutil.NewMockClient(t)
		repo := NewPostgresRepository(client)

		mock.ExpectBegin()
		mock.ExpectQuery(q(`SELECT id FROM jobs WHERE id = $1`)).WithArgs(1).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery(q(`SELECT username FROM users WHERE username = $1`)).WithArgs("u1").WillReturnRows(sqlmock.NewRows([]string{"username"}).AddRow("u1"))
		mock.ExpectExec(q(`INSERT INTO applications (job_id, username) VALUES ($1, $2)`)).WithArgs(1, "u1").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Apply(ctx, "u1", 1))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing job rolls back", func(t *testing.T) {
		client, mock := testutil.NewMockClient(t)
		repo := NewPostgresRepository(client)

		mock.ExpectBegin()
		mock.ExpectQuery(q(`SELECT id FROM jobs`)).WithArgs(0).WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		require.ErrorIs(t, repo.Apply(ctx, "u1", 0), userErrors.ErrJobNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing user rolls back", func(t *testing.T) {
		client, mock := testutil.NewMockClient(t)
		repo := NewPostgresRepository(client)

		mock.ExpectBegin()
		mock.ExpectQuery(q(`SELECT id FROM jobs`)).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery(q(`SELECT username FROM users`)).WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		require.ErrorIs(t, repo.Apply(ctx, "nope", 1), userErrors.ErrUserNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second application is a duplicate", func(t *testing.T) {
		client, mock := testutil.NewMockClient(t)
		repo := NewPostgresRepository(client)

		mock.ExpectBegin()
		mock.ExpectQuery(q(`SELECT id FROM jobs`)).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery(q(`SELECT username FROM users`)).WillReturnRows(sqlmock.NewRows([]string{"username"}).AddRow("u1"))
		mock.ExpectExec(q(`INSERT INTO applications`)).WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		require.ErrorIs(t, repo.Apply(ctx, "u1", 1), userErrors.ErrDuplicateApplication)
	})
}
