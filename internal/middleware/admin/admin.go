package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/joblyhq/jobly/internal/types"
)

type Config struct {
	UserCtxName string
	// Optional override to check custom permission instead of the admin flag
	HasAccess func(c *fiber.Ctx, u types.UserContext) bool
}

// New requires an authenticated user: 401 without one, 403 when HasAccess
// (default: the admin flag) denies.
func New(config Config) fiber.Handler {
	userKey := config.UserCtxName
	if userKey == "" {
		userKey = types.UserCtxName
	}
	hasAccess := config.HasAccess
	if hasAccess == nil {
		hasAccess = func(_ *fiber.Ctx, u types.UserContext) bool { return u.IsAdmin }
	}

	return func(c *fiber.Ctx) error {
		user, ok := c.Locals(userKey).(types.UserContext)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "missing user context",
			})
		}
		if !hasAccess(c, user) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"code":    "FORBIDDEN",
				"message": "admin access required",
			})
		}
		return c.Next()
	}
}

// NewAdminOrSelf admits admins and the user named by the route parameter.
func NewAdminOrSelf(param string) fiber.Handler {
	return New(Config{
		HasAccess: func(c *fiber.Ctx, u types.UserContext) bool {
			return u.CanActAs(c.Params(param))
		},
	})
}
