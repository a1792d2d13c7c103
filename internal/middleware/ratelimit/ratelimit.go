// Package ratelimit provides rate limiting middleware for authentication endpoints
package ratelimit

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/joblyhq/jobly/internal/pkg/log"
)

// EndpointType represents different authentication endpoints for rate limiting
type EndpointType int

const (
	EndpointLogin EndpointType = iota
	EndpointRegister
)

// Limit is the request budget for one endpoint.
type Limit struct {
	Max      int
	Duration time.Duration
}

// DefaultLimit returns the defaults for endpointType.
func DefaultLimit(endpointType EndpointType) Limit {
	switch endpointType {
	case EndpointLogin:
		return Limit{Max: 5, Duration: 15 * time.Minute}
	case EndpointRegister:
		return Limit{Max: 10, Duration: time.Hour}
	default:
		return Limit{Max: 5, Duration: 15 * time.Minute}
	}
}

// Config holds the configuration for rate limiting middleware
type Config struct {
	EndpointType EndpointType

	// Custom limit (optional - uses defaults if zero)
	Limit Limit

	// Storage shares counters between instances (optional - in memory if nil)
	Storage fiber.Storage

	// Next defines a function to skip this middleware when returned true
	Next func(c *fiber.Ctx) bool

	// Custom key generator (optional - uses default IP-based if not provided)
	KeyGenerator func(c *fiber.Ctx) string

	// LimitReached defines the response when rate limit is exceeded
	LimitReached func(c *fiber.Ctx) error
}

func configDefault(config Config) Config {
	defaults := DefaultLimit(config.EndpointType)
	if config.Limit.Max <= 0 {
		config.Limit.Max = defaults.Max
	}
	if config.Limit.Duration <= 0 {
		config.Limit.Duration = defaults.Duration
	}

	if config.KeyGenerator == nil {
		config.KeyGenerator = func(c *fiber.Ctx) string {
			return c.IP() + ":" + c.Path()
		}
	}

	if config.LimitReached == nil {
		endpointName := getEndpointName(config.EndpointType)
		window := config.Limit.Duration
		config.LimitReached = func(c *fiber.Ctx) error {
			log.WarnWithContext(c.UserContext(), "[RateLimit] Rate limit exceeded for %s from IP: %s", endpointName, c.IP())

			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"code":       "RATE_LIMIT_EXCEEDED",
				"message":    fmt.Sprintf("Too many %s attempts. Please try again later.", endpointName),
				"retryAfter": int(window.Seconds()),
			})
		}
	}

	return config
}

func getEndpointName(endpointType EndpointType) string {
	switch endpointType {
	case EndpointLogin:
		return "login"
	case EndpointRegister:
		return "registration"
	default:
		return "unknown"
	}
}

// New creates a new rate limiting middleware handler
func New(config Config) fiber.Handler {
	cfg := configDefault(config)

	return limiter.New(limiter.Config{
		Max:          cfg.Limit.Max,
		Expiration:   cfg.Limit.Duration,
		KeyGenerator: cfg.KeyGenerator,
		LimitReached: cfg.LimitReached,
		Next:         cfg.Next,
		Storage:      cfg.Storage,
	})
}
