// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"fmt"

	companyErrors "github.com/joblyhq/jobly/companies/errors"
	"github.com/joblyhq/jobly/companies/models"
	"github.com/joblyhq/jobly/companies/repository"
	"github.com/joblyhq/jobly/internal/pkg/log"
	"github.com/joblyhq/jobly/internal/pkg/validate"
)

// CompanyService defines the interface for company operations
type CompanyService interface {
	Create(ctx context.Context, req models.CreateCompanyRequest) (*models.Company, error)
	FindAll(ctx context.Context, filter models.CompanyFilter) ([]*models.Company, error)
	Get(ctx context.Context, handle string) (*models.Company, error)
	Update(ctx context.Context, handle string, req models.UpdateCompanyRequest) (*models.Company, error)
	Remove(ctx context.Context, handle string) error
}

// companyService implements the CompanyService interface
type companyService struct {
	repo repository.Repository
}

// NewCompanyService creates a new instance of the company service
func NewCompanyService(repo repository.Repository) CompanyService {
	return &companyService{repo: repo}
}

func (s *companyService) Create(ctx context.Context, req models.CreateCompanyRequest) (*models.Company, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", companyErrors.ErrValidationFailed, err)
	}

	company, err := s.repo.Create(ctx, req.Company())
	if err != nil {
		return nil, err
	}

	log.InfoWithContext(ctx, "company %s created", company.Handle)
	return company, nil
}

// FindAll lists companies; a minimum above the maximum is rejected before
// any query runs.
func (s *companyService) FindAll(ctx context.Context, filter models.CompanyFilter) ([]*models.Company, error) {
	if err := validate.Struct(filter); err != nil {
		return nil, fmt.Errorf("%w: %v", companyErrors.ErrValidationFailed, err)
	}
	if filter.MinEmployees != nil && filter.MaxEmployees != nil && *filter.MinEmployees > *filter.MaxEmployees {
		return nil, companyErrors.ErrInvalidRange
	}

	return s.repo.FindAll(ctx, filter.Fields())
}

func (s *companyService) Get(ctx context.Context, handle string) (*models.Company, error) {
	return s.repo.Get(ctx, handle)
}

func (s *companyService) Update(ctx context.Context, handle string, req models.UpdateCompanyRequest) (*models.Company, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", companyErrors.ErrValidationFailed, err)
	}

	fields := req.Fields()
	if fields.Len() == 0 {
		return nil, companyErrors.ErrNoData
	}

	return s.repo.Update(ctx, handle, fields)
}

func (s *companyService) Remove(ctx context.Context, handle string) error {
	if _, err := s.repo.Remove(ctx, handle); err != nil {
		return err
	}

	log.InfoWithContext(ctx, "company %s removed", handle)
	return nil
}
