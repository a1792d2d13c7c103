// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/joblyhq/jobly/companies/errors"
	"github.com/joblyhq/jobly/companies/models"
	"github.com/joblyhq/jobly/companies/services"
	"github.com/joblyhq/jobly/internal/pkg/parser"
)

// CompanyHandler handles all company-related HTTP requests
type CompanyHandler struct {
	companyService services.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler with injected dependencies
func NewCompanyHandler(companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// Create handles POST /companies
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var req models.CreateCompanyRequest
	if err := parser.Body(c, &req); err != nil {
		return errors.HandleServiceError(c, err)
	}

	company, err := h.companyService.Create(c.UserContext(), req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"company": company})
}

// FindAll handles GET /companies?minEmployees=&maxEmployees=&nameLike=
func (h *CompanyHandler) FindAll(c *fiber.Ctx) error {
	var filter models.CompanyFilter
	if err := parser.Query(c, &filter); err != nil {
		return errors.HandleServiceError(c, err)
	}

	companies, err := h.companyService.FindAll(c.UserContext(), filter)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"companies": companies})
}

// Get handles GET /companies/:handle
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	company, err := h.companyService.Get(c.UserContext(), c.Params("handle"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"company": company})
}

// Update handles PATCH /companies/:handle
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var req models.UpdateCompanyRequest
	if err := parser.Body(c, &req); err != nil {
		return errors.HandleServiceError(c, err)
	}

	company, err := h.companyService.Update(c.UserContext(), c.Params("handle"), req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"company": company})
}

// Remove handles DELETE /companies/:handle
func (h *CompanyHandler) Remove(c *fiber.Ctx) error {
	handle := c.Params("handle")
	if err := h.companyService.Remove(c.UserContext(), handle); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"deleted": handle})
}
