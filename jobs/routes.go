package jobs

import (
	"github.com/gofiber/fiber/v2"
	"github.com/joblyhq/jobly/internal/middleware/admin"
	"github.com/joblyhq/jobly/jobs/handlers"
)

// JobsHandlers holds all the handlers this router needs
type JobsHandlers struct {
	JobHandler *handlers.JobHandler
}

// RegisterRoutes is the single entry point for setting up job routes
func RegisterRoutes(router fiber.Router, h *JobsHandlers) {
	group := router.Group("/jobs")
	adminOnly := admin.New(admin.Config{})

	group.Get("/", h.JobHandler.FindAll)
	group.Get("/:id", h.JobHandler.Get)

	group.Post("/", adminOnly, h.JobHandler.Create)
	group.Patch("/:id", adminOnly, h.JobHandler.Update)
	group.Delete("/:id", adminOnly, h.JobHandler.Remove)
}
