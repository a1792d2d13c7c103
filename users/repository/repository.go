// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/joblyhq/jobly/internal/database/sqlutil"
	"github.com/joblyhq/jobly/users/models"
)

// Repository defines user persistence. Passwords arrive already hashed.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// FindCredentials returns the user together with its password hash
	FindCredentials(ctx context.Context, username string) (*models.User, error)

	// FindAll returns users ordered by username
	FindAll(ctx context.Context, filters sqlutil.FieldSet) ([]*models.User, error)

	// Get returns one user with the ids of the jobs applied to
	Get(ctx context.Context, username string) (*models.UserWithJobs, error)

	Update(ctx context.Context, username string, fields sqlutil.FieldSet) (*models.User, error)

	Remove(ctx context.Context, username string) (string, error)

	// Apply records an application of username to jobID
	Apply(ctx context.Context, username string, jobID int) error
}
