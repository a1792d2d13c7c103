package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/joblyhq/jobly/internal/pkg/log"
)

// ErrorBody is the envelope for errors that escape the domain handlers.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the message and HTTP status.
type ErrorDetail struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ErrorHandler is the fiber.Config ErrorHandler shared by the app.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	// A handler that already wrote a body keeps it.
	if len(c.Response().Body()) > 0 && c.Response().StatusCode() >= fiber.StatusBadRequest {
		return nil
	}

	message := err.Error()
	if code >= fiber.StatusInternalServerError {
		log.ErrorWithContext(c.UserContext(), "[ErrorHandler] %s %s: %v", c.Method(), c.Path(), err)
		if fe == nil {
			message = "Internal Server Error"
		}
	}

	return c.Status(code).JSON(ErrorBody{Error: ErrorDetail{Message: message, Status: code}})
}

// NotFound terminates the middleware chain for unmatched routes.
func NotFound(c *fiber.Ctx) error {
	return fiber.NewError(fiber.StatusNotFound, "Not Found")
}
