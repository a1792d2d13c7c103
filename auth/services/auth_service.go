package services

import (
	"context"
	"fmt"

	"github.com/joblyhq/jobly/auth/errors"
	"github.com/joblyhq/jobly/auth/models"
	"github.com/joblyhq/jobly/internal/pkg/log"
	"github.com/joblyhq/jobly/internal/pkg/validate"
	"github.com/joblyhq/jobly/internal/types"
	userModels "github.com/joblyhq/jobly/users/models"
	gopass "github.com/nbutton23/zxcvbn-go"
)

// UserStore is the part of the users service authentication needs.
type UserStore interface {
	Create(ctx context.Context, req userModels.CreateUserRequest) (*userModels.User, error)
	Authenticate(ctx context.Context, username, password string) (*userModels.User, error)
}

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	CreateToken(user types.UserContext) (string, error)
}

// AuthService issues tokens for existing and newly registered users.
type AuthService interface {
	Token(ctx context.Context, req models.TokenRequest) (string, error)
	Register(ctx context.Context, req models.RegisterRequest) (string, error)
}

type authService struct {
	users            UserStore
	issuer           TokenIssuer
	passwordMinScore int
}

// NewAuthService creates an AuthService. Registrations whose password
// scores below passwordMinScore (0-4) are rejected.
func NewAuthService(users UserStore, issuer TokenIssuer, passwordMinScore int) AuthService {
	return &authService{users: users, issuer: issuer, passwordMinScore: passwordMinScore}
}

func (s *authService) Token(ctx context.Context, req models.TokenRequest) (string, error) {
	if err := validate.Struct(req); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrValidationFailed, err)
	}

	user, err := s.users.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return "", err
	}
	return s.sign(user)
}

func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	if err := validate.Struct(req); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrValidationFailed, err)
	}

	strength := gopass.PasswordStrength(req.Password, []string{req.Username, req.FirstName, req.LastName, req.Email})
	if strength.Score < s.passwordMinScore {
		return "", fmt.Errorf("%w: score %d", errors.ErrWeakPassword, strength.Score)
	}

	user, err := s.users.Create(ctx, req.CreateUserRequest())
	if err != nil {
		return "", err
	}

	log.InfoWithContext(ctx, "[Auth] registered user %s", user.Username)
	return s.sign(user)
}

func (s *authService) sign(user *userModels.User) (string, error) {
	token, err := s.issuer.CreateToken(types.UserContext{Username: user.Username, IsAdmin: user.IsAdmin})
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
