package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/joblyhq/jobly/internal/pkg/parser"
	userErrors "github.com/joblyhq/jobly/users/errors"
)

// Auth service specific errors
var (
	ErrWeakPassword       = errors.New("password is not strong enough")
	ErrValidationFailed   = errors.New("validation failed")
	ErrInvalidCredentials = userErrors.ErrInvalidCredentials
	ErrDuplicateUser      = userErrors.ErrDuplicateUser
	ErrInvalidBody        = parser.ErrInvalidBody
)

// Error codes
const (
	CodeWeakPassword       = "WEAK_PASSWORD"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeDuplicateUser      = "DUPLICATE_USER"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInternalError      = "INTERNAL_ERROR"
)

// ErrorResponse represents the standardized error response format
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleServiceError handles service errors and returns appropriate HTTP responses.
// Credential failures never carry details so callers cannot tell a missing
// user from a wrong password.
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Code:    CodeInvalidCredentials,
			Message: "Invalid username/password",
		})
	case errors.Is(err, ErrWeakPassword):
		return respond(c, http.StatusBadRequest, CodeWeakPassword, "Password is not strong enough", err)
	case errors.Is(err, ErrDuplicateUser):
		return respond(c, http.StatusConflict, CodeDuplicateUser, "Duplicate username", err)
	case errors.Is(err, ErrInvalidBody):
		return respond(c, http.StatusBadRequest, CodeInvalidRequest, err.Error(), err)
	case errors.Is(err, ErrValidationFailed), errors.Is(err, userErrors.ErrValidationFailed):
		return respond(c, http.StatusBadRequest, CodeValidationFailed, "Validation failed", err)
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    CodeInternalError,
			Message: "An unexpected error occurred",
		})
	}
}

func respond(c *fiber.Ctx, status int, code, message string, err error) error {
	return c.Status(status).JSON(ErrorResponse{
		Code:    code,
		Message: message,
		Details: err.Error(),
	})
}
