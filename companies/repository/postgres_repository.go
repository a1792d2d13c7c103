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
	companyErrors "github.com/joblyhq/jobly/companies/errors"
	"github.com/joblyhq/jobly/companies/models"
	"github.com/joblyhq/jobly/internal/database/postgres"
	"github.com/joblyhq/jobly/internal/database/sqlutil"
)

const companyColumns = `handle, name, description, num_employees, logo_url`

var updateColumns = sqlutil.ColumnMapping{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

var filterPredicates = sqlutil.PredicateMapping{
	"minEmployees": sqlutil.Compare(`"num_employees" >=`),
	"maxEmployees": sqlutil.Compare(`"num_employees" <=`),
	"nameLike":     sqlutil.Like(`"name" ILIKE`),
}

// postgresRepository implements Repository using raw SQL queries
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL repository for companies
func NewPostgresRepository(client *postgres.Client) Repository {
	return &postgresRepository{client: client}
}

// getExecutor returns either the transaction from context or the DB connection
func (r *postgresRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	return r.client.Executor(ctx)
}

func (r *postgresRepository) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	exec := r.getExecutor(ctx)

	var existing string
	err := sqlx.GetContext(ctx, exec, &existing, `SELECT handle FROM companies WHERE handle = $1`, company.Handle)
	if err == nil {
		return nil, fmt.Errorf("%w: %s", companyErrors.ErrDuplicateCompany, company.Handle)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to check company handle: %w", err)
	}

	query := `
		INSERT INTO companies (handle, name, description, num_employees, logo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + companyColumns

	var created models.Company
	err = sqlx.GetContext(ctx, exec, &created, query,
		company.Handle, company.Name, company.Description, company.NumEmployees, company.LogoURL)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", companyErrors.ErrDuplicateCompany, company.Handle)
		}
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) FindAll(ctx context.Context, filters sqlutil.FieldSet) ([]*models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies`
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
	query += " ORDER BY name"

	companies := []*models.Company{}
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &companies, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find companies: %w", err)
	}

	return companies, nil
}

func (r *postgresRepository) Get(ctx context.Context, handle string) (*models.Company, error) {
	exec := r.getExecutor(ctx)

	var company models.Company
	err := sqlx.GetContext(ctx, exec, &company,
		`SELECT `+companyColumns+` FROM companies WHERE handle = $1`, handle)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", companyErrors.ErrCompanyNotFound, handle)
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	jobs := []models.CompanyJob{}
	err = sqlx.SelectContext(ctx, exec, &jobs,
		`SELECT id, title, salary, equity FROM jobs WHERE company_handle = $1 ORDER BY id`, handle)
	if err != nil {
		return nil, fmt.Errorf("failed to get company jobs: %w", err)
	}
	company.Jobs = jobs

	return &company, nil
}

func (r *postgresRepository) Update(ctx context.Context, handle string, fields sqlutil.FieldSet) (*models.Company, error) {
	set, err := sqlutil.PartialUpdate(fields, updateColumns)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE companies SET %s WHERE handle = $%d RETURNING %s`,
		set.SQL, set.Next(), companyColumns)
	args := append(set.Values, handle)

	var company models.Company
	if err := sqlx.GetContext(ctx, r.getExecutor(ctx), &company, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", companyErrors.ErrCompanyNotFound, handle)
		}
		if postgres.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: name already taken", companyErrors.ErrDuplicateCompany)
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	return &company, nil
}

func (r *postgresRepository) Remove(ctx context.Context, handle string) (string, error) {
	var deleted string
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &deleted,
		`DELETE FROM companies WHERE handle = $1 RETURNING handle`, handle)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%w: %s", companyErrors.ErrCompanyNotFound, handle)
		}
		return "", fmt.Errorf("failed to remove company: %w", err)
	}
	return deleted, nil
}
