// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/joblyhq/jobly/companies/models"
	"github.com/joblyhq/jobly/internal/database/sqlutil"
)

// Repository defines company persistence. Semantic field and filter names
// (camelCase) are translated to columns here.
type Repository interface {
	// Create inserts a company; an existing handle yields ErrDuplicateCompany
	Create(ctx context.Context, company *models.Company) (*models.Company, error)

	// FindAll returns companies matching filters ordered by name
	FindAll(ctx context.Context, filters sqlutil.FieldSet) ([]*models.Company, error)

	// Get returns one company with its jobs attached
	Get(ctx context.Context, handle string) (*models.Company, error)

	// Update applies a partial update and returns the stored row
	Update(ctx context.Context, handle string, fields sqlutil.FieldSet) (*models.Company, error)

	// Remove deletes a company and returns its handle
	Remove(ctx context.Context, handle string) (string, error)
}
