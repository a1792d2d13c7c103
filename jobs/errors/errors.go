package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/joblyhq/jobly/internal/database/sqlutil"
	"github.com/joblyhq/jobly/internal/pkg/parser"
)

// Job service specific errors
var (
	ErrJobNotFound      = errors.New("job not found")
	ErrCompanyNotFound  = errors.New("company not found")
	ErrInvalidJobID     = errors.New("invalid job id")
	ErrValidationFailed = errors.New("validation failed")
	ErrNoData           = sqlutil.ErrNoData
	ErrUnknownFilter    = sqlutil.ErrUnknownFilter
	ErrInvalidQuery     = parser.ErrInvalidQuery
	ErrInvalidBody      = parser.ErrInvalidBody
)

// Error codes
const (
	CodeJobNotFound      = "JOB_NOT_FOUND"
	CodeCompanyNotFound  = "COMPANY_NOT_FOUND"
	CodeInvalidJobID     = "INVALID_JOB_ID"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeNoData           = "NO_DATA"
	CodeInvalidQuery     = "INVALID_QUERY"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInternalError    = "INTERNAL_ERROR"
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
	case errors.Is(err, ErrJobNotFound):
		return respond(c, http.StatusNotFound, CodeJobNotFound, "Job not found", err)
	case errors.Is(err, ErrCompanyNotFound):
		// The company is referenced from the body, so this is the client's mistake.
		return respond(c, http.StatusBadRequest, CodeCompanyNotFound, "Company not found", err)
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
