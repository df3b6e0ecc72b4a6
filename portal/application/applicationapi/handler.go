package applicationapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/openhire/jobportal/pkg/iam/auth"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/access"
	"github.com/openhire/jobportal/portal/application"
	"github.com/openhire/jobportal/portal/application/applicationsrv"
	"github.com/openhire/jobportal/portal/user"
)

// Handlers provides HTTP handlers for application operations
type Handlers struct {
	service  *applicationsrv.ApplicationService
	resolver *access.Resolver
}

// NewHandlers creates a new application handlers instance
func NewHandlers(service *applicationsrv.ApplicationService, resolver *access.Resolver) *Handlers {
	return &Handlers{
		service:  service,
		resolver: resolver,
	}
}

// ListApplications lists applications visible to the caller
// GET /api/applications
func (h *Handlers) ListApplications(c *fiber.Ctx) error {
	scope, err := h.callerScope(c)
	if err != nil {
		return err
	}

	var status *application.Status
	if raw := c.Query("status"); raw != "" {
		st := application.Status(raw)
		if !st.IsValid() {
			return application.ErrInvalidStatus().WithDetail("status", raw)
		}
		status = &st
	}

	apps, err := h.service.ViewApplications(c.Context(), scope, status, parsePaginationOptions(c))
	if err != nil {
		return err
	}

	return c.JSON(apps)
}

// ApplyToJob submits an application to a posting
// POST /api/applications/:jobId
func (h *Handlers) ApplyToJob(c *fiber.Ctx) error {
	jobID := kernel.NewJobID(kernel.ParseID(c.Params("jobId")))
	if jobID.IsZero() {
		return application.ErrApplicationNotFound().WithDetail("job_id", c.Params("jobId"))
	}

	scope, err := h.callerScope(c)
	if err != nil {
		return err
	}

	app, err := h.service.ApplyToJob(c.Context(), scope, jobID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(app)
}

// UpdateStatus decides a pending application
// PUT /api/applications/:id/status
func (h *Handlers) UpdateStatus(c *fiber.Ctx) error {
	id := kernel.NewApplicationID(kernel.ParseID(c.Params("id")))
	if id.IsZero() {
		return application.ErrApplicationNotFound().WithDetail("id", c.Params("id"))
	}

	scope, err := h.callerScope(c)
	if err != nil {
		return err
	}

	var req application.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidStatus().WithDetail("parse_error", err.Error())
	}

	detail, err := h.service.UpdateApplicationStatus(c.Context(), scope, id, req.Status)
	if err != nil {
		return err
	}

	return c.JSON(detail)
}

// GetApplicantCV returns the latest CV of an applicant
// GET /api/applications/:id/cv
func (h *Handlers) GetApplicantCV(c *fiber.Ctx) error {
	id := kernel.NewApplicationID(kernel.ParseID(c.Params("id")))
	if id.IsZero() {
		return application.ErrApplicationNotFound().WithDetail("id", c.Params("id"))
	}

	scope, err := h.callerScope(c)
	if err != nil {
		return err
	}

	resp, err := h.service.GetApplicantCV(c.Context(), scope, id)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// RemoveApplication withdraws a pending application
// DELETE /api/applications/:id
func (h *Handlers) RemoveApplication(c *fiber.Ctx) error {
	id := kernel.NewApplicationID(kernel.ParseID(c.Params("id")))
	if id.IsZero() {
		return application.ErrApplicationNotFound().WithDetail("id", c.Params("id"))
	}

	scope, err := h.callerScope(c)
	if err != nil {
		return err
	}

	if err := h.service.RemoveApplication(c.Context(), scope, id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
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

// RegisterRoutes registers all application routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/applications")

	api.Get("/", authMiddleware.Authenticate(), handlers.ListApplications)

	api.Post("/:jobId",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleJobSeeker)),
		handlers.ApplyToJob,
	)

	api.Put("/:id/status",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleEmployer)),
		handlers.UpdateStatus,
	)

	api.Get("/:id/cv",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleEmployer)),
		handlers.GetApplicantCV,
	)

	api.Delete("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleJobSeeker)),
		handlers.RemoveApplication,
	)
}
