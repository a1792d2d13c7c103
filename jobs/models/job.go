package models

import "github.com/joblyhq/jobly/internal/database/sqlutil"

// Job is a row of the jobs table. Equity is NUMERIC and travels as a
// decimal string to keep its exact value.
type Job struct {
	ID            int         `json:"id" db:"id"`
	Title         string      `json:"title" db:"title"`
	Salary        *int        `json:"salary" db:"salary"`
	Equity        *string     `json:"equity" db:"equity"`
	CompanyHandle string      `json:"companyHandle" db:"company_handle"`
	CompanyName   *string     `json:"companyName,omitempty" db:"company_name"`
	Company       *JobCompany `json:"company,omitempty" db:"-"`
}

// JobCompany is the company attached to a single job.
type JobCompany struct {
	Handle       string  `json:"handle" db:"handle"`
	Name         string  `json:"name" db:"name"`
	Description  string  `json:"description" db:"description"`
	NumEmployees *int    `json:"numEmployees" db:"num_employees"`
	LogoURL      *string `json:"logoUrl" db:"logo_url"`
}

// CreateJobRequest is the body of POST /jobs.
type CreateJobRequest struct {
	Title         string  `json:"title" validate:"required,min=1"`
	Salary        *int    `json:"salary" validate:"omitnil,gte=0"`
	Equity        *string `json:"equity" validate:"omitnil,fraction"`
	CompanyHandle string  `json:"companyHandle" validate:"required,min=1,max=25"`
}

// Job converts the request into the row to insert.
func (r CreateJobRequest) Job() *Job {
	return &Job{
		Title:         r.Title,
		Salary:        r.Salary,
		Equity:        r.Equity,
		CompanyHandle: r.CompanyHandle,
	}
}

// UpdateJobRequest is the body of PATCH /jobs/:id. Neither the id nor the
// company can change.
type UpdateJobRequest struct {
	Title  *string `json:"title" validate:"omitnil,min=1"`
	Salary *int    `json:"salary" validate:"omitnil,gte=0"`
	Equity *string `json:"equity" validate:"omitnil,fraction"`
}

// Fields returns the present fields in declaration order.
func (r UpdateJobRequest) Fields() sqlutil.FieldSet {
	var fs sqlutil.FieldSet
	if r.Title != nil {
		fs.Set("title", *r.Title)
	}
	if r.Salary != nil {
		fs.Set("salary", *r.Salary)
	}
	if r.Equity != nil {
		fs.Set("equity", *r.Equity)
	}
	return fs
}

// JobFilter is the query string of GET /jobs.
type JobFilter struct {
	Title     *string `query:"title" json:"title" validate:"omitnil,min=1"`
	MinSalary *int    `query:"minSalary" json:"minSalary" validate:"omitnil,gte=0"`
	HasEquity *bool   `query:"hasEquity" json:"hasEquity"`
}

// Fields returns the present filters in declaration order.
func (f JobFilter) Fields() sqlutil.FieldSet {
	var fs sqlutil.FieldSet
	if f.Title != nil {
		fs.Set("title", *f.Title)
	}
	if f.MinSalary != nil {
		fs.Set("minSalary", *f.MinSalary)
	}
	if f.HasEquity != nil {
		fs.Set("hasEquity", *f.HasEquity)
	}
	return fs
}
