package services

import (
	"context"

	"github.com/joblyhq/jobly/companies/models"
	"github.com/joblyhq/jobly/companies/repository"
	"github.com/joblyhq/jobly/internal/database/sqlutil"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the company Repository interface
type MockRepository struct {
	mock.Mock
}

var _ repository.Repository = (*MockRepository)(nil)

func (m *MockRepository) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	args := m.Called(ctx, company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context, filters sqlutil.FieldSet) ([]*models.Company, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Company), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, handle string) (*models.Company, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, handle string, fields sqlutil.FieldSet) (*models.Company, error) {
	args := m.Called(ctx, handle, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockRepository) Remove(ctx context.Context, handle string) (string, error) {
	args := m.Called(ctx, handle)
	return args.String(0), args.Error(1)
}
