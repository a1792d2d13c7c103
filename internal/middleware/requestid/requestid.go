package requestid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid"
	"github.com/joblyhq/jobly/internal/pkg/log"
	"github.com/joblyhq/jobly/internal/types"
)

// ContextKeyRequestID is the key used to store request ID in Fiber context
const ContextKeyRequestID = "request_id"

// New creates a middleware that generates or uses an existing X-Request-ID
// header and propagates it into the request context for the logger.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(types.HeaderRequestID)
		if requestID == "" {
			id, err := uuid.NewV4()
			if err != nil {
				id, _ = uuid.NewV4()
			}
			requestID = id.String()
		}

		c.Locals(ContextKeyRequestID, requestID)
		c.SetUserContext(log.WithRequestID(c.UserContext(), requestID))
		c.Set(types.HeaderRequestID, requestID)

		return c.Next()
	}
}

// GetRequestID retrieves the request ID from Fiber context
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(ContextKeyRequestID).(string); ok {
		return id
	}
	return ""
}
