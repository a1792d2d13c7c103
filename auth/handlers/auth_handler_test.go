package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joblyhq/jobly/auth"
	"github.com/joblyhq/jobly/auth/handlers"
	"github.com/joblyhq/jobly/auth/models"
	"github.com/joblyhq/jobly/auth/services"
	"github.com/joblyhq/jobly/internal/auth/tokens"
	"github.com/joblyhq/jobly/internal/middleware/ratelimit"
	"github.com/joblyhq/jobly/internal/testutil"
	userErrors "github.com/joblyhq/jobly/users/errors"
	userModels "github.com/joblyhq/jobly/users/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, cfg auth.RouteConfig) (*testutil.HTTPHelper, *services.MockUserStore, *tokens.Issuer) {
	app, issuer := testutil.NewAuthApp(t)
	store := new(services.MockUserStore)
	auth.RegisterRoutes(app, &auth.AuthHandlers{
		AuthHandler: handlers.NewAuthHandler(services.NewAuthService(store, issuer, 2)),
	}, cfg)
	return testutil.NewHTTPHelper(t, app), store, issuer
}

func TestTokenEndpoint(t *testing.T) {
	h, store, issuer := setup(t, auth.RouteConfig{})
	store.On("Authenticate", mock.Anything, "u1", "password1").Return(&userModels.User{Username: "u1"}, nil)
	store.On("Authenticate", mock.Anything, "u1", "nope").Return(nil, userErrors.ErrInvalidCredentials)

	var body models.TokenResponse
	h.NewRequest(http.MethodPost, "/auth/token", fiber.Map{"username": "u1", "password": "password1"}).
		SendJSON(http.StatusOK, &body)
	claims, err := issuer.ParseToken(body.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Username)

	resp := h.NewRequest(http.MethodPost, "/auth/token", fiber.Map{"username": "u1", "password": "nope"}).Send()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = h.NewRequest(http.MethodPost, "/auth/token", fiber.Map{"username": "u1"}).Send()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = h.NewRequest(http.MethodPost, "/auth/token", fiber.Map{"username": "u1", "password": "password1", "extra": 1}).Send()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterEndpoint(t *testing.T) {
	newUser := fiber.Map{
		"username":  "new",
		"firstName": "first",
		"lastName":  "last",
		"password":  "Xk9#pLq2!vTz",
		"email":     "new@email.com",
	}

	t.Run("created", func(t *testing.T) {
		h, store, issuer := setup(t, auth.RouteConfig{})
		store.On("Create", mock.Anything, mock.Anything).Return(&userModels.User{Username: "new"}, nil)

		var body models.TokenResponse
		h.NewRequest(http.MethodPost, "/auth/register", newUser).SendJSON(http.StatusCreated, &body)
		claims, err := issuer.ParseToken(body.Token)
		require.NoError(t, err)
		assert.False(t, claims.IsAdmin)
	})

	t.Run("isAdmin is not accepted", func(t *testing.T) {
		h, _, _ := setup(t, auth.RouteConfig{})
		withAdmin := fiber.Map{"isAdmin": true}
		for k, v := range newUser {
			withAdmin[k] = v
		}
		resp := h.NewRequest(http.MethodPost, "/auth/register", withAdmin).Send()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("duplicate", func(t *testing.T) {
		h, store, _ := setup(t, auth.RouteConfig{})
		store.On("Create", mock.Anything, mock.Anything).Return(nil, userErrors.ErrDuplicateUser)

		resp := h.NewRequest(http.MethodPost, "/auth/register", newUser).Send()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("weak password", func(t *testing.T) {
		h, _, _ := setup(t, auth.RouteConfig{})
		weak := fiber.Map{}
		for k, v := range newUser {
			weak[k] = v
		}
		weak["password"] = "aaaaa"
		resp := h.NewRequest(http.MethodPost, "/auth/register", weak).Send()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestTokenRateLimit(t *testing.T) {
	h, store, _ := setup(t, auth.RouteConfig{
		TokenLimit: &ratelimit.Config{
			EndpointType: ratelimit.EndpointLogin,
			Limit:        ratelimit.Limit{Max: 2, Duration: time.Minute},
		},
	})
	store.On("Authenticate", mock.Anything, "u1", "nope").Return(nil, userErrors.ErrInvalidCredentials)

	for i := 0; i < 2; i++ {
		resp := h.NewRequest(http.MethodPost, "/auth/token", fiber.Map{"username": "u1", "password": "nope"}).Send()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
	resp := h.NewRequest(http.MethodPost, "/auth/token", fiber.Map{"username": "u1", "password": "nope"}).Send()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}
