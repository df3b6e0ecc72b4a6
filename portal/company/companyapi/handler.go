package companyapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/openhire/jobportal/pkg/iam/auth"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/access"
	"github.com/openhire/jobportal/portal/company"
	"github.com/openhire/jobportal/portal/company/companysrv"
	"github.com/openhire/jobportal/portal/user"
)

// Handlers provides HTTP handlers for company operations
type Handlers struct {
	service  *companysrv.CompanyService
	resolver *access.Resolver
}

// NewHandlers creates a new company handlers instance
func NewHandlers(service *companysrv.CompanyService, resolver *access.Resolver) *Handlers {
	return &Handlers{
		service:  service,
		resolver: resolver,
	}
}

// ListCompanies retrieves all companies with sector names and counts
// GET /api/companies
func (h *Handlers) ListCompanies(c *fiber.Ctx) error {
	companies, err := h.service.ListCompanies(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(companies)
}

// GetCompany retrieves a company by ID
// GET /api/companies/:id
func (h *Handlers) GetCompany(c *fiber.Ctx) error {
	id := kernel.NewCompanyID(kernel.ParseID(c.Params("id")))
	if id.IsZero() {
		return company.ErrCompanyNotFound().WithDetail("id", c.Params("id"))
	}

	resp, err := h.service.GetCompany(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// CreateCompany creates a new company
// POST /api/companies
func (h *Handlers) CreateCompany(c *fiber.Ctx) error {
	var req company.CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return company.ErrInvalidCompany().WithDetail("parse_error", err.Error())
	}

	newCompany, err := h.service.CreateCompany(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newCompany)
}

// UpdateCompany updates an existing company
// PUT /api/companies/:id
func (h *Handlers) UpdateCompany(c *fiber.Ctx) error {
	id := kernel.NewCompanyID(kernel.ParseID(c.Params("id")))
	if id.IsZero() {
		return company.ErrCompanyNotFound().WithDetail("id", c.Params("id"))
	}

	var req company.UpdateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return company.ErrInvalidCompany().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateCompany(c.Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// DeleteCompany deletes a company without employees or jobs
// DELETE /api/companies/:id
func (h *Handlers) DeleteCompany(c *fiber.Ctx) error {
	id := kernel.NewCompanyID(kernel.ParseID(c.Params("id")))
	if id.IsZero() {
		return company.ErrCompanyNotFound().WithDetail("id", c.Params("id"))
	}

	if err := h.service.DeleteCompany(c.Context(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ListWorkers retrieves a company's worker assignments
// GET /api/companies/:id/workers
func (h *Handlers) ListWorkers(c *fiber.Ctx) error {
	companyID := kernel.NewCompanyID(kernel.ParseID(c.Params("id")))
	if companyID.IsZero() {
		return company.ErrCompanyNotFound().WithDetail("id", c.Params("id"))
	}

	scope, err := h.callerScope(c)
	if err != nil {
		return err
	}
	if !scope.CoversCompany(companyID) {
		return access.ErrForbidden().WithDetail("company_id", companyID.String())
	}

	workers, err := h.service.ListWorkers(c.Context(), companyID)
	if err != nil {
		return err
	}

	return c.JSON(workers)
}

// AssignWorker assigns a user to a company department
// POST /api/companies/:id/workers
func (h *Handlers) AssignWorker(c *fiber.Ctx) error {
	companyID := kernel.NewCompanyID(kernel.ParseID(c.Params("id")))
	if companyID.IsZero() {
		return company.ErrCompanyNotFound().WithDetail("id", c.Params("id"))
	}

	scope, err := h.callerScope(c)
	if err != nil {
		return err
	}
	if !scope.CoversCompany(companyID) {
		return access.ErrForbidden().WithDetail("company_id", companyID.String())
	}

	var req company.AssignWorkerRequest
	if err := c.BodyParser(&req); err != nil {
		return company.ErrWorkerNotFound().WithDetail("parse_error", err.Error())
	}

	worker, err := h.service.AssignWorker(c.Context(), companyID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(worker)
}

// RemoveWorker removes a worker assignment
// DELETE /api/companies/:id/workers/:workerId
func (h *Handlers) RemoveWorker(c *fiber.Ctx) error {
	companyID := kernel.NewCompanyID(kernel.ParseID(c.Params("id")))
	if companyID.IsZero() {
		return company.ErrCompanyNotFound().WithDetail("id", c.Params("id"))
	}

	scope, err := h.callerScope(c)
	if err != nil {
		return err
	}
	if !scope.CoversCompany(companyID) {
		return access.ErrForbidden().WithDetail("company_id", companyID.String())
	}

	workerID := kernel.ParseID(c.Params("workerId"))
	if workerID == 0 {
		return company.ErrWorkerNotFound().WithDetail("id", c.Params("workerId"))
	}

	if err := h.service.RemoveWorker(c.Context(), workerID); err != nil {
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

// RegisterRoutes registers all company routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/companies")

	api.Get("/", authMiddleware.Authenticate(), handlers.ListCompanies)
	api.Get("/:id", authMiddleware.Authenticate(), handlers.GetCompany)

	api.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleAdmin)),
		handlers.CreateCompany,
	)
	api.Put("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleAdmin)),
		handlers.UpdateCompany,
	)
	api.Delete("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleAdmin)),
		handlers.DeleteCompany,
	)

	api.Get("/:id/workers",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleAdmin), string(user.RoleEmployer)),
		handlers.ListWorkers,
	)
	api.Post("/:id/workers",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleAdmin), string(user.RoleEmployer)),
		handlers.AssignWorker,
	)
	api.Delete("/:id/workers/:workerId",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleAdmin), string(user.RoleEmployer)),
		handlers.RemoveWorker,
	)
}
