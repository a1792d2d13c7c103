// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package companies

import (
	"github.com/gofiber/fiber/v2"
	"github.com/joblyhq/jobly/companies/handlers"
	"github.com/joblyhq/jobly/internal/middleware/admin"
)

// CompaniesHandlers holds all the handlers this router needs
type CompaniesHandlers struct {
	CompanyHandler *handlers.CompanyHandler
}

// RegisterRoutes is the single entry point for setting up company routes.
// Reads are public; writes require an admin token.
func RegisterRoutes(router fiber.Router, h *CompaniesHandlers) {
	group := router.Group("/companies")
	adminOnly := admin.New(admin.Config{})

	group.Get("/", h.CompanyHandler.FindAll)
	group.Get("/:handle", h.CompanyHandler.Get)

	group.Post("/", adminOnly, h.CompanyHandler.Create)
	group.Patch("/:handle", adminOnly, h.CompanyHandler.Update)
	group.Delete("/:handle", adminOnly, h.CompanyHandler.Remove)
}
