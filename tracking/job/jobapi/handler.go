package jobapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Abraxas-365/jobtrack/pkg/kernel"
	"github.com/Abraxas-365/jobtrack/tracking/job"
	"github.com/Abraxas-365/jobtrack/tracking/job/jobsrv"
	"github.com/Abraxas-365/jobtrack/tracking/user"
	"github.com/Abraxas-365/jobtrack/tracking/user/userauth"
)

type JobHandlers struct {
	service *jobsrv.Service
}

func NewJobHandlers(service *jobsrv.Service) *JobHandlers {
	return &JobHandlers{service: service}
}

func (h *JobHandlers) RegisterRoutes(app *fiber.App, authMiddleware fiber.Handler) {
	jobs := app.Group("/api/jobs", authMiddleware)

	jobs.Post("/", h.CreateJob)
	jobs.Get("/", h.ListJobs)
	jobs.Get("/search", h.SearchJobs)
	jobs.Get("/:id", h.GetJob)
	jobs.Patch("/:id", h.UpdateJob)
	jobs.Delete("/:id", h.DeleteJob)
}

func ownerID(c *fiber.Ctx) (kernel.UserID, error) {
	userID, ok := userauth.GetUserID(c)
	if !ok {
		return "", user.ErrInvalidToken()
	}
	return userID, nil
}

// CreateJob tracks a new job for the authenticated user.
// POST /api/jobs
func (h *JobHandlers) CreateJob(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req job.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrMissingFields("title", "description", "company", "location")
	}

	created, err := h.service.Create(c.Context(), owner, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(job.ToResponse(created))
}

// ListJobs returns a page of the user's jobs.
// GET /api/jobs?page=1&page_size=20
func (h *JobHandlers) ListJobs(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	opts := kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}

	page, err := h.service.List(c.Context(), owner, opts)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"jobs": job.ToResponseList(page.Items),
		"page": page.Page,
	})
}

// SearchJobs ranks the user's jobs by semantic similarity to the query.
// GET /api/jobs/search?q=backend+go&limit=10
func (h *JobHandlers) SearchJobs(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	results, err := h.service.SearchSimilar(c.Context(), owner, c.Query("q"), c.QueryInt("limit", 10))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"jobs": job.ToResponseList(results)})
}

// GetJob returns one of the user's jobs.
// GET /api/jobs/:id
func (h *JobHandlers) GetJob(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	found, err := h.service.Get(c.Context(), owner, kernel.JobID(c.Params("id")))
	if err != nil {
		return err
	}

	return c.JSON(job.ToResponse(found))
}

// UpdateJob applies a partial update to one of the user's jobs.
// PATCH /api/jobs/:id
func (h *JobHandlers) UpdateJob(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req job.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrMissingFields()
	}

	updated, err := h.service.Update(c.Context(), owner, kernel.JobID(c.Params("id")), req)
	if err != nil {
		return err
	}

	return c.JSON(job.ToResponse(updated))
}

// DeleteJob removes one of the user's jobs.
// DELETE /api/jobs/:id
func (h *JobHandlers) DeleteJob(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	id := kernel.JobID(c.Params("id"))
	deleted, err := h.service.Get(c.Context(), owner, id)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), owner, id); err != nil {
		return err
	}

	return c.JSON(job.ToResponse(deleted))
}
