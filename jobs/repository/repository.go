package repository

import (
	"context"

	"github.com/joblyhq/jobly/internal/database/sqlutil"
	"github.com/joblyhq/jobly/jobs/models"
)

// Repository defines job persistence.
type Repository interface {
	// Create inserts a job; an unknown company yields ErrCompanyNotFound
	Create(ctx context.Context, job *models.Job) (*models.Job, error)

	// FindAll returns jobs matching filters ordered by title, with company names
	FindAll(ctx context.Context, filters sqlutil.FieldSet) ([]*models.Job, error)

	// Get returns one job with its company attached
	Get(ctx context.Context, id int) (*models.Job, error)

	Update(ctx context.Context, id int, fields sqlutil.FieldSet) (*models.Job, error)

	Remove(ctx context.Context, id int) (int, error)
}
