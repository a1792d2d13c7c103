package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joblyhq/jobly/internal/pkg/log"
)

// HealthChecker is satisfied by *postgres.Client.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Health reports ok when the database answers within timeout.
func Health(db HealthChecker, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()

		if err := db.HealthCheck(ctx); err != nil {
			log.WarnWithContext(ctx, "[health] %v", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":   "unavailable",
				"database": "down",
			})
		}

		return c.JSON(fiber.Map{
			"status":   "ok",
			"database": "up",
		})
	}
}
