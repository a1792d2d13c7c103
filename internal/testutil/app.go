package testutil

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joblyhq/jobly/internal/auth/tokens"
	"github.com/joblyhq/jobly/internal/middleware/authjwt"
	"github.com/joblyhq/jobly/internal/server"
	"github.com/joblyhq/jobly/internal/types"
	"github.com/stretchr/testify/require"
)

// TestJWTSecret signs tokens in handler tests.
const TestJWTSecret = "test-secret"

// NewAuthApp returns an app with the production error handler and the
// optional JWT middleware installed, plus the issuer its tokens verify with.
func NewAuthApp(t *testing.T) (*fiber.App, *tokens.Issuer) {
	t.Helper()

	issuer := tokens.NewIssuer(TestJWTSecret, time.Hour)
	app := fiber.New(fiber.Config{ErrorHandler: server.ErrorHandler})
	app.Use(authjwt.New(authjwt.Config{Parser: issuer}))
	return app, issuer
}

// Token signs a token for username.
func Token(t *testing.T, issuer *tokens.Issuer, username string, isAdmin bool) string {
	t.Helper()

	token, err := issuer.CreateToken(types.UserContext{Username: username, IsAdmin: isAdmin})
	require.NoError(t, err)
	return token
}
