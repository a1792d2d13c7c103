// Package accesslog writes one line per request through the shared logger.
package accesslog

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joblyhq/jobly/internal/pkg/log"
)

// Config defines the config for the access log middleware.
type Config struct {
	// Next defines a function to skip this middleware when returned true
	Next func(c *fiber.Ctx) bool
}

// New logs method, path, status and latency once the chain has run. The
// request id is picked up from the user context set by requestid.
func New(config ...Config) fiber.Handler {
	var cfg Config
	if len(config) > 0 {
		cfg = config[0]
	}

	return func(c *fiber.Ctx) error {
		if cfg.Next != nil && cfg.Next(c) {
			return c.Next()
		}

		start := time.Now()
		chainErr := c.Next()

		status := c.Response().StatusCode()
		if chainErr != nil {
			// The app error handler has not run yet.
			status = fiber.StatusInternalServerError
			if fe, ok := chainErr.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		log.InfoWithContext(c.UserContext(), "%s %s %d - %s",
			c.Method(), c.OriginalURL(), status, time.Since(start).Round(time.Microsecond))

		return chainErr
	}
}
