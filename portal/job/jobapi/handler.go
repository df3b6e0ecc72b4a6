package jobapi

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/openhire/jobportal/pkg/iam/auth"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/access"
	"github.com/openhire/jobportal/portal/job"
	"github.com/openhire/jobportal/portal/job/jobsrv"
	"github.com/openhire/jobportal/portal/user"
)

// Handlers provides HTTP handlers for job operations
type Handlers struct {
	service  *jobsrv.JobService
	resolver *access.Resolver
}

// NewHandlers creates a new job handlers instance
func NewHandlers(service *jobsrv.JobService, resolver *access.Resolver) *Handlers {
	return &Handlers{
		service:  service,
		resolver: resolver,
	}
}

// ListJobs retrieves postings with optional search and sector filters.
// Authenticated viewers additionally get their favorite and application flags.
// GET /api/jobs
func (h *Handlers) ListJobs(c *fiber.Ctx) error {
	req := job.ListJobsRequest{
		Search:     c.Query("search"),
		Pagination: parsePaginationOptions(c),
	}

	if sectorID := kernel.ParseID(c.Query("sectorId")); sectorID > 0 {
		id := kernel.NewSectorID(sectorID)
		req.SectorID = &id
	}

	if claims, ok := auth.GetClaims(c); ok {
		viewerID := claims.UserID
		req.ViewerID = &viewerID
	}

	jobs, err := h.service.ListJobs(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// GetJob retrieves a posting by ID
// GET /api/jobs/:id
func (h *Handlers) GetJob(c *fiber.Ctx) error {
	jobID := kernel.NewJobID(kernel.ParseID(c.Params("id")))
	if jobID.IsZero() {
		return job.ErrJobNotFound().WithDetail("id", c.Params("id"))
	}

	var viewerID *kernel.UserID
	if claims, ok := auth.GetClaims(c); ok {
		viewerID = &claims.UserID
	}

	resp, err := h.service.GetJob(c.Context(), jobID, viewerID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// CreateJob posts a new job for the caller's company
// POST /api/jobs
func (h *Handlers) CreateJob(c *fiber.Ctx) error {
	scope, err := h.callerScope(c)
	if err != nil {
		return err
	}

	var req job.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidJob().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.CreateJob(c.Context(), scope, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateJob updates an existing posting and replaces its skill set
// PUT /api/jobs/:id
func (h *Handlers) UpdateJob(c *fiber.Ctx) error {
	jobID := kernel.NewJobID(kernel.ParseID(c.Params("id")))
	if jobID.IsZero() {
		return job.ErrJobNotFound().WithDetail("id", c.Params("id"))
	}

	scope, err := h.callerScope(c)
	if err != nil {
		return err
	}

	var req job.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidJob().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.UpdateJob(c.Context(), scope, jobID, req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// DeleteJob deletes a posting
// DELETE /api/jobs/:id
func (h *Handlers) DeleteJob(c *fiber.Ctx) error {
	jobID := kernel.NewJobID(kernel.ParseID(c.Params("id")))
	if jobID.IsZero() {
		return job.ErrJobNotFound().WithDetail("id", c.Params("id"))
	}

	scope, err := h.callerScope(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteJob(c.Context(), scope, jobID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleFillStatus flips a posting between open and filled
// PUT /api/jobs/:id/toggle-status
func (h *Handlers) ToggleFillStatus(c *fiber.Ctx) error {
	jobID := kernel.NewJobID(kernel.ParseID(c.Params("id")))
	if jobID.IsZero() {
		return job.ErrJobNotFound().WithDetail("id", c.Params("id"))
	}

	scope, err := h.callerScope(c)
	if err != nil {
		return err
	}

	filled, err := h.service.ToggleFillStatus(c.Context(), scope, jobID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"jobId":    jobID,
		"isFilled": filled,
	})
}

// AdminListJobs retrieves postings across all companies with fill-status and
// company filters
// GET /api/admin/jobs
func (h *Handlers) AdminListJobs(c *fiber.Ctx) error {
	req := job.ListJobsRequest{
		Search:     c.Query("search"),
		Pagination: parsePaginationOptions(c),
	}

	if raw := c.Query("isFilled"); raw != "" {
		filled, err := strconv.ParseBool(raw)
		if err != nil {
			return job.ErrInvalidJob().WithDetail("isFilled", raw)
		}
		req.IsFilled = &filled
	}

	if companyID := kernel.ParseID(c.Query("companyId")); companyID > 0 {
		id := kernel.NewCompanyID(companyID)
		req.CompanyID = &id
	}

	jobs, err := h.service.ListJobs(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// ListCompanyJobs retrieves the caller's own company postings
// GET /api/jobs/mine
func (h *Handlers) ListCompanyJobs(c *fiber.Ctx) error {
	scope, err := h.callerScope(c)
	if err != nil {
		return err
	}

	jobs, err := h.service.ListCompanyJobs(c.Context(), scope, parsePaginationOptions(c))
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// callerScope resolves the authenticated caller into an access scope
func (h *Handlers) callerScope(c *fiber.Ctx) (access.Scope, error) {
	claims, ok := auth.GetClaims(c)
	if !ok {
		return access.Scope{}, auth.ErrMissingToken()
	}
	return h.resolver.Resolve(c.Context(), claims.UserID)
}

// parsePaginationOptions extracts pagination options from query parameters
func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return kernel.PaginationOptions{
		Page:     page,
		PageSize: pageSize,
	}
}

// RegisterRoutes registers all job routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/jobs")

	// Browsing is open; flags light up for authenticated viewers
	api.Get("/", authMiddleware.AuthenticateOptional(), handlers.ListJobs)

	api.Get("/mine",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleEmployer)),
		handlers.ListCompanyJobs,
	)

	api.Get("/:id", authMiddleware.AuthenticateOptional(), handlers.GetJob)

	api.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleEmployer)),
		handlers.CreateJob,
	)

	api.Put("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleEmployer)),
		handlers.UpdateJob,
	)

	api.Put("/:id/toggle-status",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleEmployer), string(user.RoleAdmin)),
		handlers.ToggleFillStatus,
	)

	api.Delete("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleEmployer), string(user.RoleAdmin)),
		handlers.DeleteJob,
	)

	admin := app.Group("/api/admin/jobs",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleAdmin)),
	)
	admin.Get("/", handlers.AdminListJobs)
}
