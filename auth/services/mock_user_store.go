package services

import (
	"context"

	userModels "github.com/joblyhq/jobly/users/models"
	"github.com/stretchr/testify/mock"
)

// MockUserStore is a mock implementation of UserStore
type MockUserStore struct {
	mock.Mock
}

var _ UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) Create(ctx context.Context, req userModels.CreateUserRequest) (*userModels.User, error) {
	args := m.Called(ctx, req)
	if user := args.Get(0); user != nil {
		return user.(*userModels.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserStore) Authenticate(ctx context.Context, username, password string) (*userModels.User, error) {
	args := m.Called(ctx, username, password)
	if user := args.Get(0); user != nil {
		return user.(*userModels.User), args.Error(1)
	}
	return nil, args.Error(1)
}
