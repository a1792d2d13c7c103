package models

import "github.com/joblyhq/jobly/internal/database/sqlutil"

// Company is a row of the companies table.
type Company struct {
	Handle       string       `json:"handle" db:"handle"`
	Name         string       `json:"name" db:"name"`
	Description  string       `json:"description" db:"description"`
	NumEmployees *int         `json:"numEmployees" db:"num_employees"`
	LogoURL      *string      `json:"logoUrl" db:"logo_url"`
	Jobs         []CompanyJob `json:"jobs,omitempty" db:"-"`
}

// CompanyJob is the job summary attached to a single company.
type CompanyJob struct {
	ID     int     `json:"id" db:"id"`
	Title  string  `json:"title" db:"title"`
	Salary *int    `json:"salary" db:"salary"`
	Equity *string `json:"equity" db:"equity"`
}

// CreateCompanyRequest is the body of POST /companies.
type CreateCompanyRequest struct {
	Handle       string  `json:"handle" validate:"required,min=1,max=25,lowercase"`
	Name         string  `json:"name" validate:"required,min=1"`
	Description  string  `json:"description" validate:"required"`
	NumEmployees *int    `json:"numEmployees" validate:"omitnil,gte=0"`
	LogoURL      *string `json:"logoUrl" validate:"omitnil,url"`
}

// Company converts the request into the row to insert.
func (r CreateCompanyRequest) Company() *Company {
	return &Company{
		Handle:       r.Handle,
		Name:         r.Name,
		Description:  r.Description,
		NumEmployees: r.NumEmployees,
		LogoURL:      r.LogoURL,
	}
}

// UpdateCompanyRequest is the body of PATCH /companies/:handle. The handle
// is not part of it and is rejected as an unknown field.
type UpdateCompanyRequest struct {
	Name         *string `json:"name" validate:"omitnil,min=1"`
	Description  *string `json:"description"`
	NumEmployees *int    `json:"numEmployees" validate:"omitnil,gte=0"`
	LogoURL      *string `json:"logoUrl" validate:"omitnil,url"`
}

// Fields returns the present fields in declaration order.
func (r UpdateCompanyRequest) Fields() sqlutil.FieldSet {
	var fs sqlutil.FieldSet
	if r.Name != nil {
		fs.Set("name", *r.Name)
	}
	if r.Description != nil {
		fs.Set("description", *r.Description)
	}
	if r.NumEmployees != nil {
		fs.Set("numEmployees", *r.NumEmployees)
	}
	if r.LogoURL != nil {
		fs.Set("logoUrl", *r.LogoURL)
	}
	return fs
}

// CompanyFilter is the query string of GET /companies.
type CompanyFilter struct {
	MinEmployees *int    `query:"minEmployees" json:"minEmployees" validate:"omitnil,gte=0"`
	MaxEmployees *int    `query:"maxEmployees" json:"maxEmployees" validate:"omitnil,gte=0"`
	NameLike     *string `query:"nameLike" json:"nameLike" validate:"omitnil,min=1"`
}

// Fields returns the present filters in declaration order.
func (f CompanyFilter) Fields() sqlutil.FieldSet {
	var fs sqlutil.FieldSet
	if f.MinEmployees != nil {
		fs.Set("minEmployees", *f.MinEmployees)
	}
	if f.MaxEmployees != nil {
		fs.Set("maxEmployees", *f.MaxEmployees)
	}
	if f.NameLike != nil {
		fs.Set("nameLike", *f.NameLike)
	}
	return fs
}
