package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/joblyhq/jobly/auth/errors"
	"github.com/joblyhq/jobly/auth/models"
	"github.com/joblyhq/jobly/auth/services"
	"github.com/joblyhq/jobly/internal/pkg/parser"
)

// AuthHandler handles token and registration requests
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler with injected dependencies
func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Token handles POST /auth/token
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req models.TokenRequest
	if err := parser.Body(c, &req); err != nil {
		return errors.HandleServiceError(c, err)
	}

	token, err := h.authService.Token(c.UserContext(), req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(models.TokenResponse{Token: token})
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := parser.Body(c, &req); err != nil {
		return errors.HandleServiceError(c, err)
	}

	token, err := h.authService.Register(c.UserContext(), req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(models.TokenResponse{Token: token})
}
