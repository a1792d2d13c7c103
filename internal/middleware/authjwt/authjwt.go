package authjwt

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/joblyhq/jobly/internal/pkg/log"
	"github.com/joblyhq/jobly/internal/types"
)

// TokenParser verifies a raw token and returns its user.
type TokenParser interface {
	ParseToken(token string) (types.UserContext, error)
}

// Config defines the config for the JWT middleware.
type Config struct {
	Parser TokenParser
	// The context key to store the UserContext.
	UserCtxName string
}

// New authenticates the request when a valid Bearer token is present and
// stores the user in Locals. A missing or invalid token is not an error;
// routes that need a user guard themselves with RequireUser or the admin
// middleware.
func New(cfg Config) fiber.Handler {
	userKey := cfg.UserCtxName
	if userKey == "" {
		userKey = types.UserCtxName
	}

	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c.Get(types.HeaderAuthorization))
		if tokenString == "" {
			return c.Next()
		}

		user, err := cfg.Parser.ParseToken(tokenString)
		if err != nil {
			log.Debug("[authjwt] ignoring token on %s: %v", c.Path(), err)
			return c.Next()
		}

		c.Locals(userKey, user)
		return c.Next()
	}
}

// RequireUser rejects requests that carry no authenticated user.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := c.Locals(types.UserCtxName).(types.UserContext); !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Missing or invalid JWT",
			})
		}
		return c.Next()
	}
}

// bearerToken extracts the token from an Authorization header value. The
// scheme match is case-insensitive on its first letter, as in "bearer".
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) < len(types.BearerPrefix) {
		return ""
	}
	if !strings.EqualFold(header[:len(types.BearerPrefix)], types.BearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(types.BearerPrefix):])
}
