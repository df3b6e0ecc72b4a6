package cvapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/openhire/jobportal/pkg/iam/auth"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/access"
	"github.com/openhire/jobportal/portal/cv"
	"github.com/openhire/jobportal/portal/cv/cvsrv"
	"github.com/openhire/jobportal/portal/user"
)

// Handlers provides HTTP handlers for CV operations
type Handlers struct {
	service  *cvsrv.CVService
	resolver *access.Resolver
}

// NewHandlers creates a new CV handlers instance
func NewHandlers(service *cvsrv.CVService, resolver *access.Resolver) *Handlers {
	return &Handlers{
		service:  service,
		resolver: resolver,
	}
}

// ListMyCVs retrieves the caller's CVs
// GET /api/cvs
func (h *Handlers) ListMyCVs(c *fiber.Ctx) error {
	claims, ok := auth.GetClaims(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	cvs, err := h.service.ListMyCVs(c.Context(), claims.UserID)
	if err != nil {
		return err
	}

	return c.JSON(cvs)
}

// GetCV retrieves a CV by ID
// GET /api/cvs/:id
func (h *Handlers) GetCV(c *fiber.Ctx) error {
	id := kernel.NewCVID(kernel.ParseID(c.Params("id")))
	if id.IsZero() {
		return cv.ErrCVNotFound().WithDetail("id", c.Params("id"))
	}

	scope, err := h.callerScope(c)
	if err != nil {
		return err
	}

	resp, err := h.service.GetCV(c.Context(), scope, id)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// CreateCV creates a CV for the caller
// POST /api/cvs
func (h *Handlers) CreateCV(c *fiber.Ctx) error {
	scope, err := h.callerScope(c)
	if err != nil {
		return err
	}

	var req cv.CreateCVRequest
	if err := c.BodyParser(&req); err != nil {
		return cv.ErrInvalidSkillSet().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.CreateCV(c.Context(), scope, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateCV updates the caller's CV and replaces its skill set
// PUT /api/cvs/:id
func (h *Handlers) UpdateCV(c *fiber.Ctx) error {
	id := kernel.NewCVID(kernel.ParseID(c.Params("id")))
	if id.IsZero() {
		return cv.ErrCVNotFound().WithDetail("id", c.Params("id"))
	}

	scope, err := h.callerScope(c)
	if err != nil {
		return err
	}

	var req cv.UpdateCVRequest
	if err := c.BodyParser(&req); err != nil {
		return cv.ErrInvalidSkillSet().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.UpdateCV(c.Context(), scope, id, req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// DeleteCV deletes the caller's CV
// DELETE /api/cvs/:id
func (h *Handlers) DeleteCV(c *fiber.Ctx) error {
	id := kernel.NewCVID(kernel.ParseID(c.Params("id")))
	if id.IsZero() {
		return cv.ErrCVNotFound().WithDetail("id", c.Params("id"))
	}

	scope, err := h.callerScope(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteCV(c.Context(), scope, id); err != nil {
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

// RegisterRoutes registers all CV routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/cvs")

	api.Get("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleJobSeeker)),
		handlers.ListMyCVs,
	)

	api.Get("/:id", authMiddleware.Authenticate(), handlers.GetCV)

	api.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleJobSeeker)),
		handlers.CreateCV,
	)

	api.Put("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleJobSeeker)),
		handlers.UpdateCV,
	)

	api.Delete("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleJobSeeker)),
		handlers.DeleteCV,
	)
}
