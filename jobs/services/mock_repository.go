package services

import (
	"context"

	"github.com/joblyhq/jobly/internal/database/sqlutil"
	"github.com/joblyhq/jobly/jobs/models"
	"github.com/joblyhq/jobly/jobs/repository"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the job Repository interface
type MockRepository struct {
	mock.Mock
}

var _ repository.Repository = (*MockRepository)(nil)

func (m *MockRepository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context, filters sqlutil.FieldSet) ([]*models.Job, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Job), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id int) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int, fields sqlutil.FieldSet) (*models.Job, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockRepository) Remove(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}
