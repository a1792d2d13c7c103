// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/joblyhq/jobly/internal/database/sqlutil"
	"github.com/joblyhq/jobly/internal/pkg/parser"
)

// User service specific errors
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrJobNotFound          = errors.New("job not found")
	ErrDuplicateUser        = errors.New("duplicate username")
	ErrDuplicateApplication = errors.New("already applied")
	ErrInvalidCredentials   = errors.New("invalid username/password")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrInvalidJobID         = errors.New("invalid job id")
	ErrValidationFailed     = errors.New("validation failed")
	ErrNoData               = sqlutil.ErrNoData
	ErrUnknownFilter        = sqlutil.ErrUnknownFilter
	ErrInvalidQuery         = parser.ErrInvalidQuery
	ErrInvalidBody          = parser.ErrInvalidBody
)

// Error codes
const (
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodeJobNotFound          = "JOB_NOT_FOUND"
	CodeDuplicateUser        = "DUPLICATE_USER"
	CodeDuplicateApplication = "DUPLICATE_APPLICATION"
	CodeInvalidCredentials   = "INVALID_CREDENTIALS"
	CodePermissionDenied     = "PERMISSION_DENIED"
	CodeInvalidJobID         = "INVALID_JOB_ID"
	CodeValidationFailed     = "VALIDATION_FAILED"
	CodeNoData               = "NO_DATA"
	CodeInvalidQuery         = "INVALID_QUERY"
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeInternalError        = "INTERNAL_ERROR"
)

// ErrorResponse represents the standardized error response format
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleServiceError handles service errors and returns appropriate HTTP responses
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrUserNotFound):
		return respond(c, http.StatusNotFound, CodeUserNotFound, "User not found", err)
	case errors.Is(err, ErrJobNotFound):
		return respond(c, http.StatusNotFound, CodeJobNotFound, "Job not found", err)
	case errors.Is(err, ErrDuplicateUser):
		return respond(c, http.StatusConflict, CodeDuplicateUser, "Duplicate username", err)
	case errors.Is(err, ErrDuplicateApplication):
		return respond(c, http.StatusConflict, CodeDuplicateApplication, "Already applied to this job", err)
	case errors.Is(err, ErrInvalidCredentials):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Code:    CodeInvalidCredentials,
			Message: "Invalid username/password",
		})
	case errors.Is(err, ErrPermissionDenied):
		return respond(c, http.StatusForbidden, CodePermissionDenied, "Permission denied", err)
	case errors.Is(err, ErrInvalidJobID):
		return respond(c, http.StatusBadRequest, CodeInvalidJobID, "Invalid job id", err)
	case errors.Is(err, ErrNoData):
		return respond(c, http.StatusBadRequest, CodeNoData, "No data", err)
	case errors.Is(err, ErrUnknownFilter), errors.Is(err, ErrInvalidQuery):
		return respond(c, http.StatusBadRequest, CodeInvalidQuery, "Invalid query", err)
	case errors.Is(err, ErrInvalidBody):
		return respond(c, http.StatusBadRequest, CodeInvalidRequest, err.Error(), err)
	case errors.Is(err, ErrValidationFailed):
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
