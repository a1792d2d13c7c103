// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/joblyhq/jobly/internal/database/postgres"
	"github.com/joblyhq/jobly/internal/database/sqlutil"
	userErrors "github.com/joblyhq/jobly/users/errors"
	"github.com/joblyhq/jobly/users/models"
)

const userColumns = `username, first_name, last_name, email, is_admin`

var updateColumns = sqlutil.ColumnMapping{
	"firstName": "first_name",
	"lastName":  "last_name",
	"isAdmin":   "is_admin",
}

// Users are not filterable; any filter key is rejected.
var filterPredicates = sqlutil.PredicateMapping{}

type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL repository for users
func NewPostgresRepository(client *postgres.Client) Repository {
	return &postgresRepository{client: client}
}

func (r *postgresRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	return r.client.Executor(ctx)
}

func (r *postgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	exec := r.getExecutor(ctx)

	var existing string
	err := sqlx.GetContext(ctx, exec, &existing, `SELECT username FROM users WHERE username = $1`, user.Username)
	if err == nil {
		return nil, fmt.Errorf("%w: %s", userErrors.ErrDuplicateUser, user.Username)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	query := `
		INSERT INTO users (username, password, first_name, last_name, email, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	var created models.User
	err = sqlx.GetContext(ctx, exec, &created, query,
		user.Username, user.Password, user.FirstName, user.LastName, user.Email, user.IsAdmin)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", userErrors.ErrDuplicateUser, user.Username)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) FindCredentials(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &user,
		`SELECT `+userColumns+`, password FROM users WHERE username = $1`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", userErrors.ErrUserNotFound, username)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *postgresRepository) FindAll(ctx context.Context, filters sqlutil.FieldSet) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`
	var args []interface{}

	if filters.Len() > 0 {
		where, err := sqlutil.Filters(filters, filterPredicates)
		if err != nil {
			return nil, err
		}
		if !where.Empty() {
			query += " " + where.SQL
			args = where.Values
		}
	}
	query += " ORDER BY username"

	users := []*models.User{}
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &users, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	return users, nil
}

func (r *postgresRepository) Get(ctx context.Context, username string) (*models.UserWithJobs, error) {
	exec := r.getExecutor(ctx)

	var user models.UserWithJobs
	err := sqlx.GetContext(ctx, exec, &user.User,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", userErrors.ErrUserNotFound, username)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.Jobs = []int{}
	err = sqlx.SelectContext(ctx, exec, &user.Jobs,
		`SELECT job_id FROM applications WHERE username = $1 ORDER BY job_id`, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user applications: %w", err)
	}

	return &user, nil
}

func (r *postgresRepository) Update(ctx context.Context, username string, fields sqlutil.FieldSet) (*models.User, error) {
	set, err := sqlutil.PartialUpdate(fields, updateColumns)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE username = $%d RETURNING %s`, set.SQL, set.Next(), userColumns)
	args := append(set.Values, username)

	var user models.User
	if err := sqlx.GetContext(ctx, r.getExecutor(ctx), &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", userErrors.ErrUserNotFound, username)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}

func (r *postgresRepository) Remove(ctx context.Context, username string) (string, error) {
	var deleted string
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &deleted,
		`DELETE FROM users WHERE username = $1 RETURNING username`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%w: %s", userErrors.ErrUserNotFound, username)
		}
		return "", fmt.Errorf("failed to remove user: %w", err)
	}
	return deleted, nil
}

// Apply checks the job and the user inside one transaction before inserting
// the application.
func (r *postgresRepository) Apply(ctx context.Context, username string, jobID int) error {
	return r.client.WithTx(ctx, func(ctx context.Context) error {
		exec := r.getExecutor(ctx)

		var id int
		if err := sqlx.GetContext(ctx, exec, &id, `SELECT id FROM jobs WHERE id = $1`, jobID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("%w: %d", userErrors.ErrJobNotFound, jobID)
			}
			return fmt.Errorf("failed to check job: %w", err)
		}

		var name string
		if err := sqlx.GetContext(ctx, exec, &name, `SELECT username FROM users WHERE username = $1`, username); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("%w: %s", userErrors.ErrUserNotFound, username)
			}
			return fmt.Errorf("failed to check user: %w", err)
		}

		if _, err := exec.ExecContext(ctx,
			`INSERT INTO applications (job_id, username) VALUES ($1, $2)`, jobID, username); err != nil {
			if postgres.IsUniqueViolation(err) {
				return fmt.Errorf("%w: job %d", userErrors.ErrDuplicateApplication, jobID)
			}
			return fmt.Errorf("failed to apply: %w", err)
		}
		return nil
	})
}
