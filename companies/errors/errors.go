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

// Company service specific errors
var (
	ErrCompanyNotFound  = errors.New("company not found")
	ErrDuplicateCompany = errors.New("duplicate company")
	ErrInvalidRange     = errors.New("max employees cannot be less than min employees")
	ErrValidationFailed = errors.New("validation failed")
	ErrNoData           = sqlutil.ErrNoData
	ErrUnknownFilter    = sqlutil.ErrUnknownFilter
	ErrInvalidQuery     = parser.ErrInvalidQuery
	ErrInvalidBody      = parser.ErrInvalidBody
)

// Error codes
const (
	CodeCompanyNotFound  = "COMPANY_NOT_FOUND"
	CodeDuplicateCompany = "DUPLICATE_COMPANY"
	CodeInvalidRange     = "INVALID_RANGE"
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
	case errors.Is(err, ErrCompanyNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeCompanyNotFound,
			Message: "Company not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrDuplicateCompany):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Code:    CodeDuplicateCompany,
			Message: "Duplicate company",
			Details: err.Error(),
		})
	case errors.Is(err, ErrInvalidRange):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeInvalidRange,
			Message: "Max employees cannot be less than min employees",
		})
	case errors.Is(err, ErrNoData):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeNoData,
			Message: "No data",
			Details: err.Error(),
		})
	case errors.Is(err, ErrUnknownFilter), errors.Is(err, ErrInvalidQuery):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeInvalidQuery,
			Message: "Invalid query",
			Details: err.Error(),
		})
	case errors.Is(err, ErrInvalidBody):
		return HandleInvalidRequestError(c, err.Error())
	case errors.Is(err, ErrValidationFailed):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeValidationFailed,
			Message: "Validation failed",
			Details: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    CodeInternalError,
			Message: "An unexpected error occurred",
		})
	}
}

// HandleInvalidRequestError handles invalid request errors with 400 Bad Request
func HandleInvalidRequestError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeInvalidRequest,
		Message: message,
		Details: message,
	})
}
