package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/joblyhq/jobly/internal/database/postgres"
	"github.com/joblyhq/jobly/internal/database/sqlutil"
	jobErrors "github.com/joblyhq/jobly/jobs/errors"
	"github.com/joblyhq/jobly/jobs/models"
)

const jobColumns = `id, title, salary, equity, company_handle`

var updateColumns = sqlutil.ColumnMapping{
	"companyHandle": "company_handle",
}

var filterPredicates = sqlutil.PredicateMapping{
	"title":     sqlutil.Like(`"title" ILIKE`),
	"minSalary": sqlutil.Compare(`"salary" >`),
	"hasEquity": sqlutil.Flag(`"equity" > 0`),
}

type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL repository for jobs
func NewPostgresRepository(client *postgres.Client) Repository {
	return &postgresRepository{client: client}
}

func (r *postgresRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	return r.client.Executor(ctx)
}

func (r *postgresRepository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	query := `
		INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + jobColumns

	var created models.Job
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &created, query,
		job.Title, job.Salary, job.Equity, job.CompanyHandle)
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: %s", jobErrors.ErrCompanyNotFound, job.CompanyHandle)
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) FindAll(ctx context.Context, filters sqlutil.FieldSet) ([]*models.Job, error) {
	query := `
		SELECT j.id, j.title, j.salary, j.equity, j.company_handle, c.name AS company_name
		FROM jobs j
		LEFT JOIN companies AS c ON c.handle = j.company_handle`
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
	query += " ORDER BY title"

	jobs := []*models.Job{}
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &jobs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find jobs: %w", err)
	}

	return jobs, nil
}

func (r *postgresRepository) Get(ctx context.Context, id int) (*models.Job, error) {
	exec := r.getExecutor(ctx)

	var job models.Job
	err := sqlx.GetContext(ctx, exec, &job, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", jobErrors.ErrJobNotFound, id)
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	var company models.JobCompany
	err = sqlx.GetContext(ctx, exec, &company,
		`SELECT handle, name, description, num_employees, logo_url FROM companies WHERE handle = $1`,
		job.CompanyHandle)
	if err != nil {
		return nil, fmt.Errorf("failed to get job company: %w", err)
	}
	job.Company = &company

	return &job, nil
}

// Update binds the id after the SET values, at $len+1.
func (r *postgresRepository) Update(ctx context.Context, id int, fields sqlutil.FieldSet) (*models.Job, error) {
	set, err := sqlutil.PartialUpdate(fields, updateColumns)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = $%d RETURNING %s`, set.SQL, set.Next(), jobColumns)
	args := append(set.Values, id)

	var job models.Job
	if err := sqlx.GetContext(ctx, r.getExecutor(ctx), &job, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", jobErrors.ErrJobNotFound, id)
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	return &job, nil
}

func (r *postgresRepository) Remove(ctx context.Context, id int) (int, error) {
	var deleted int
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &deleted, `DELETE FROM jobs WHERE id = $1 RETURNING id`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%w: %d", jobErrors.ErrJobNotFound, id)
		}
		return 0, fmt.Errorf("failed to remove job: %w", err)
	}
	return deleted, nil
}
