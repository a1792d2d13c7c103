package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/joblyhq/jobly/internal/pkg/parser"
	"github.com/joblyhq/jobly/jobs/errors"
	"github.com/joblyhq/jobly/jobs/models"
	"github.com/joblyhq/jobly/jobs/services"
)

// JobHandler handles all job-related HTTP requests
type JobHandler struct {
	jobService services.JobService
}

// NewJobHandler creates a new JobHandler with injected dependencies
func NewJobHandler(jobService services.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// Create handles POST /jobs
func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req models.CreateJobRequest
	if err := parser.Body(c, &req); err != nil {
		return errors.HandleServiceError(c, err)
	}

	job, err := h.jobService.Create(c.UserContext(), req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"job": job})
}

// FindAll handles GET /jobs?title=&minSalary=&hasEquity=
func (h *JobHandler) FindAll(c *fiber.Ctx) error {
	var filter models.JobFilter
	if err := parser.Query(c, &filter); err != nil {
		return errors.HandleServiceError(c, err)
	}

	jobs, err := h.jobService.FindAll(c.UserContext(), filter)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"jobs": jobs})
}

// Get handles GET /jobs/:id
func (h *JobHandler) Get(c *fiber.Ctx) error {
	id, err := jobID(c)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	job, err := h.jobService.Get(c.UserContext(), id)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"job": job})
}

// Update handles PATCH /jobs/:id
func (h *JobHandler) Update(c *fiber.Ctx) error {
	id, err := jobID(c)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	var req models.UpdateJobRequest
	if err := parser.Body(c, &req); err != nil {
		return errors.HandleServiceError(c, err)
	}

	job, err := h.jobService.Update(c.UserContext(), id, req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"job": job})
}

// Remove handles DELETE /jobs/:id
func (h *JobHandler) Remove(c *fiber.Ctx) error {
	id, err := jobID(c)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	if err := h.jobService.Remove(c.UserContext(), id); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"deleted": id})
}

func jobID(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.ErrInvalidJobID
	}
	return id, nil
}
