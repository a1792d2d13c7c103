// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/joblyhq/jobly/internal/database/sqlutil"
	"github.com/joblyhq/jobly/internal/pkg/log"
	"github.com/joblyhq/jobly/internal/pkg/validate"
	"github.com/joblyhq/jobly/internal/types"
	userErrors "github.com/joblyhq/jobly/users/errors"
	"github.com/joblyhq/jobly/users/models"
	"github.com/joblyhq/jobly/users/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserService defines the interface for user operations
type UserService interface {
	Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	FindAll(ctx context.Context) ([]*models.User, error)
	Get(ctx context.Context, username string) (*models.UserWithJobs, error)
	Update(ctx context.Context, caller types.UserContext, username string, req models.UpdateUserRequest) (*models.User, error)
	Remove(ctx context.Context, username string) error
	Apply(ctx context.Context, username string, jobID int) error
}

type userService struct {
	repo       repository.Repository
	bcryptCost int
}

// NewUserService creates a new instance of the user service. Passwords are
// hashed with bcryptCost.
func NewUserService(repo repository.Repository, bcryptCost int) UserService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &userService{repo: repo, bcryptCost: bcryptCost}
}

func (s *userService) hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func (s *userService) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", userErrors.ErrValidationFailed, err)
	}

	hashed, err := s.hash(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, &models.User{
		Username:  req.Username,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		return nil, err
	}

	log.InfoWithContext(ctx, "user %s created (admin=%t)", user.Username, user.IsAdmin)
	return user, nil
}

// Authenticate returns the user when password matches. Unknown users and
// wrong passwords are indistinguishable to the caller.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.repo.FindCredentials(ctx, username)
	if err != nil {
		if errors.Is(err, userErrors.ErrUserNotFound) {
			return nil, userErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.WarnWithContext(ctx, "failed login for %s", username)
		return nil, userErrors.ErrInvalidCredentials
	}

	user.Password = ""
	return user, nil
}

func (s *userService) FindAll(ctx context.Context) ([]*models.User, error) {
	return s.repo.FindAll(ctx, sqlutil.FieldSet{})
}

func (s *userService) Get(ctx context.Context, username string) (*models.UserWithJobs, error) {
	return s.repo.Get(ctx, username)
}

// Update applies a partial update. Only admins may change the admin flag.
func (s *userService) Update(ctx context.Context, caller types.UserContext, username string, req models.UpdateUserRequest) (*models.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", userErrors.ErrValidationFailed, err)
	}
	if req.IsAdmin != nil && !caller.IsAdmin {
		return nil, fmt.Errorf("%w: only admins can change isAdmin", userErrors.ErrPermissionDenied)
	}

	if req.Password != nil {
		hashed, err := s.hash(*req.Password)
		if err != nil {
			return nil, err
		}
		req.Password = &hashed
	}

	fields := req.Fields()
	if fields.Len() == 0 {
		return nil, userErrors.ErrNoData
	}

	return s.repo.Update(ctx, username, fields)
}

func (s *userService) Remove(ctx context.Context, username string) error {
	if _, err := s.repo.Remove(ctx, username); err != nil {
		return err
	}

	log.InfoWithContext(ctx, "user %s removed", username)
	return nil
}

func (s *userService) Apply(ctx context.Context, username string, jobID int) error {
	if err := s.repo.Apply(ctx, username, jobID); err != nil {
		return err
	}

	log.InfoWithContext(ctx, "user %s applied to job %d", username, jobID)
	return nil
}
