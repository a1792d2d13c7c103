// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package users

import (
	"github.com/gofiber/fiber/v2"
	"github.com/joblyhq/jobly/internal/middleware/admin"
	"github.com/joblyhq/jobly/users/handlers"
)

// UsersHandlers holds all the handlers this router needs
type UsersHandlers struct {
	UserHandler *handlers.UserHandler
}

// RegisterRoutes is the single entry point for setting up user routes.
// Listing and creating users is admin-only; a user may manage their own
// record.
func RegisterRoutes(router fiber.Router, h *UsersHandlers) {
	group := router.Group("/users")
	adminOnly := admin.New(admin.Config{})
	adminOrSelf := admin.NewAdminOrSelf("username")

	group.Post("/", adminOnly, h.UserHandler.Create)
	group.Get("/", adminOnly, h.UserHandler.FindAll)

	group.Get("/:username", adminOrSelf, h.UserHandler.Get)
	group.Patch("/:username", adminOrSelf, h.UserHandler.Update)
	group.Delete("/:username", adminOrSelf, h.UserHandler.Remove)
	group.Post("/:username/jobs/:id", adminOrSelf, h.UserHandler.Apply)
}
