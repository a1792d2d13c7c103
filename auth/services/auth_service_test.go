package services

import (
	"context"
	"testing"
	"time"

	"github.com/joblyhq/jobly/auth/errors"
	"github.com/joblyhq/jobly/auth/models"
	"github.com/joblyhq/jobly/internal/auth/tokens"
	userErrors "github.com/joblyhq/jobly/users/errors"
	userModels "github.com/joblyhq/jobly/users/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(minScore int) (AuthService, *MockUserStore, *tokens.Issuer) {
	store := new(MockUserStore)
	issuer := tokens.NewIssuer("secret", time.Hour)
	return NewAuthService(store, issuer, minScore), store, issuer
}

func TestToken(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		svc, store, issuer := newTestService(2)
		store.On("Authenticate", ctx, "u1", "password1").Return(&userModels.User{Username: "u1", IsAdmin: true}, nil)

		token, err := svc.Token(ctx, models.TokenRequest{Username: "u1", Password: "password1"})
		require.NoError(t, err)

		claims, err := issuer.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.Username)
		assert.True(t, claims.IsAdmin)
	})

	t.Run("bad credentials", func(t *testing.T) {
		svc, store, _ := newTestService(2)
		store.On("Authenticate", ctx, "u1", "wrong").Return(nil, userErrors.ErrInvalidCredentials)

		_, err := svc.Token(ctx, models.TokenRequest{Username: "u1", Password: "wrong"})
		assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
	})

	t.Run("missing password", func(t *testing.T) {
		svc, store, _ := newTestService(2)

		_, err := svc.Token(ctx, models.TokenRequest{Username: "u1"})
		assert.ErrorIs(t, err, errors.ErrValidationFailed)
		store.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	req := models.RegisterRequest{
		Username:  "new",
		Password:  "Xk9#pLq2!vTz",
		FirstName: "first",
		LastName:  "last",
		Email:     "new@email.com",
	}

	t.Run("creates a non-admin user", func(t *testing.T) {
		svc, store, issuer := newTestService(2)
		store.On("Create", ctx, mock.MatchedBy(func(r userModels.CreateUserRequest) bool {
			return r.Username == "new" && !r.IsAdmin
		})).Return(&userModels.User{Username: "new"}, nil)

		token, err := svc.Register(ctx, req)
		require.NoError(t, err)

		claims, err := issuer.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, "new", claims.Username)
		assert.False(t, claims.IsAdmin)
		store.AssertExpectations(t)
	})

	t.Run("weak password", func(t *testing.T) {
		svc, store, _ := newTestService(2)
		weak := req
		weak.Password = "aaaaa"

		_, err := svc.Register(ctx, weak)
		assert.ErrorIs(t, err, errors.ErrWeakPassword)
		store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("strength check disabled at zero", func(t *testing.T) {
		svc, store, _ := newTestService(0)
		weak := req
		weak.Password = "aaaaa"
		store.On("Create", ctx, mock.Anything).Return(&userModels.User{Username: "new"}, nil)

		_, err := svc.Register(ctx, weak)
		assert.NoError(t, err)
	})

	t.Run("duplicate username", func(t *testing.T) {
		svc, store, _ := newTestService(2)
		store.On("Create", ctx, mock.Anything).Return(nil, userErrors.ErrDuplicateUser)

		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, errors.ErrDuplicateUser)
	})

	t.Run("invalid email", func(t *testing.T) {
		svc, _, _ := newTestService(2)
		bad := req
		bad.Email = "not-an-email"

		_, err := svc.Register(ctx, bad)
		assert.ErrorIs(t, err, errors.ErrValidationFailed)
	})
}
