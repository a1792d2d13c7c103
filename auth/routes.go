package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/joblyhq/jobly/auth/handlers"
	"github.com/joblyhq/jobly/internal/middleware/ratelimit"
)

// AuthHandlers holds all the handlers this router needs
type AuthHandlers struct {
	AuthHandler *handlers.AuthHandler
}

// RouteConfig configures the limiters in front of the auth endpoints.
// A nil limiter config disables limiting for that endpoint.
type RouteConfig struct {
	TokenLimit    *ratelimit.Config
	RegisterLimit *ratelimit.Config
}

// RegisterRoutes mounts /auth/token and /auth/register.
func RegisterRoutes(router fiber.Router, h *AuthHandlers, cfg RouteConfig) {
	group := router.Group("/auth")

	group.Post("/token", append(limiter(cfg.TokenLimit), h.AuthHandler.Token)...)
	group.Post("/register", append(limiter(cfg.RegisterLimit), h.AuthHandler.Register)...)
}

func limiter(cfg *ratelimit.Config) []fiber.Handler {
	if cfg == nil {
		return nil
	}
	return []fiber.Handler{ratelimit.New(*cfg)}
}
