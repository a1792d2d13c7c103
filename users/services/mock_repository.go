package services

import (
	"context"

	"github.com/joblyhq/jobly/internal/database/sqlutil"
	"github.com/joblyhq/jobly/users/models"
	"github.com/joblyhq/jobly/users/repository"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the user Repository interface
type MockRepository struct {
	mock.Mock
}

var _ repository.Repository = (*MockRepository)(nil)

func (m *MockRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRepository) FindCredentials(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context, filters sqlutil.FieldSet) ([]*models.User, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, username string) (*models.UserWithJobs, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserWithJobs), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, username string, fields sqlutil.FieldSet) (*models.User, error) {
	args := m.Called(ctx, username, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRepository) Remove(ctx context.Context, username string) (string, error) {
	args := m.Called(ctx, username)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) Apply(ctx context.Context, username string, jobID int) error {
	args := m.Called(ctx, username, jobID)
	return args.Error(0)
}
