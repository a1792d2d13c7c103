// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/joblyhq/jobly/internal/pkg/parser"
	"github.com/joblyhq/jobly/internal/types"
	"github.com/joblyhq/jobly/users/errors"
	"github.com/joblyhq/jobly/users/models"
	"github.com/joblyhq/jobly/users/services"
)

// TokenIssuer signs access tokens for newly created users.
type TokenIssuer interface {
	CreateToken(user types.UserContext) (string, error)
}

// UserHandler handles all user-related HTTP requests
type UserHandler struct {
	userService services.UserService
	issuer      TokenIssuer
}

// NewUserHandler creates a new UserHandler with injected dependencies
func NewUserHandler(userService services.UserService, issuer TokenIssuer) *UserHandler {
	return &UserHandler{userService: userService, issuer: issuer}
}

// Create handles POST /users. Admins may create other admins; the response
// carries a token for the new user.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := parser.Body(c, &req); err != nil {
		return errors.HandleServiceError(c, err)
	}

	user, err := h.userService.Create(c.UserContext(), req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	token, err := h.issuer.CreateToken(types.UserContext{Username: user.Username, IsAdmin: user.IsAdmin})
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"user": user, "token": token})
}

// FindAll handles GET /users
func (h *UserHandler) FindAll(c *fiber.Ctx) error {
	users, err := h.userService.FindAll(c.UserContext())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

// Get handles GET /users/:username
func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.userService.Get(c.UserContext(), c.Params("username"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// Update handles PATCH /users/:username
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var req models.UpdateUserRequest
	if err := parser.Body(c, &req); err != nil {
		return errors.HandleServiceError(c, err)
	}

	caller, _ := c.Locals(types.UserCtxName).(types.UserContext)
	user, err := h.userService.Update(c.UserContext(), caller, c.Params("username"), req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// Remove handles DELETE /users/:username
func (h *UserHandler) Remove(c *fiber.Ctx) error {
	username := c.Params("username")
	if err := h.userService.Remove(c.UserContext(), username); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": username})
}

// Apply handles POST /users/:username/jobs/:id
func (h *UserHandler) Apply(c *fiber.Ctx) error {
	jobID, err := c.ParamsInt("id")
	if err != nil || jobID <= 0 {
		return errors.HandleServiceError(c, errors.ErrInvalidJobID)
	}

	if err := h.userService.Apply(c.UserContext(), c.Params("username"), jobID); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"applied": jobID})
}
