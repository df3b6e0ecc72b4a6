package catalogapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/openhire/jobportal/pkg/iam/auth"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/catalog"
	"github.com/openhire/jobportal/portal/catalog/catalogsrv"
	"github.com/openhire/jobportal/portal/user"
)

// Handlers provides HTTP handlers for catalog operations
type Handlers struct {
	service *catalogsrv.CatalogService
}

// NewHandlers creates a new catalog handlers instance
func NewHandlers(service *catalogsrv.CatalogService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ============================================================================
// Sectors
// ============================================================================

// ListSectors retrieves all sectors with company counts
// GET /api/sectors
func (h *Handlers) ListSectors(c *fiber.Ctx) error {
	sectors, err := h.service.ListSectors(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(sectors)
}

// GetSector retrieves a sector by ID
// GET /api/sectors/:id
func (h *Handlers) GetSector(c *fiber.Ctx) error {
	id := kernel.NewSectorID(kernel.ParseID(c.Params("id")))
	if id.IsZero() {
		return catalog.ErrSectorNotFound().WithDetail("id", c.Params("id"))
	}

	sector, err := h.service.GetSector(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(sector)
}

// CreateSector creates a new sector
// POST /api/sectors
func (h *Handlers) CreateSector(c *fiber.Ctx) error {
	var req catalog.CreateSectorRequest
	if err := c.BodyParser(&req); err != nil {
		return catalog.ErrInvalidName().WithDetail("parse_error", err.Error())
	}

	sector, err := h.service.CreateSector(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(sector)
}

// UpdateSector renames a sector
// PUT /api/sectors/:id
func (h *Handlers) UpdateSector(c *fiber.Ctx) error {
	id := kernel.NewSectorID(kernel.ParseID(c.Params("id")))
	if id.IsZero() {
		return catalog.ErrSectorNotFound().WithDetail("id", c.Params("id"))
	}

	var req catalog.UpdateSectorRequest
	if err := c.BodyParser(&req); err != nil {
		return catalog.ErrInvalidName().WithDetail("parse_error", err.Error())
	}

	sector, err := h.service.UpdateSector(c.Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(sector)
}

// DeleteSector deletes a sector without companies
// DELETE /api/sectors/:id
func (h *Handlers) DeleteSector(c *fiber.Ctx) error {
	id := kernel.NewSectorID(kernel.ParseID(c.Params("id")))
	if id.IsZero() {
		return catalog.ErrSectorNotFound().WithDetail("id", c.Params("id"))
	}

	if err := h.service.DeleteSector(c.Context(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ============================================================================
// Departments
// ============================================================================

// ListDepartments retrieves all departments with job counts
// GET /api/departments
func (h *Handlers) ListDepartments(c *fiber.Ctx) error {
	departments, err := h.service.ListDepartments(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(departments)
}

// GetDepartment retrieves a department by ID
// GET /api/departments/:id
func (h *Handlers) GetDepartment(c *fiber.Ctx) error {
	id := kernel.NewDepartmentID(kernel.ParseID(c.Params("id")))
	if id.IsZero() {
		return catalog.ErrDepartmentNotFound().WithDetail("id", c.Params("id"))
	}

	department, err := h.service.GetDepartment(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(department)
}

// CreateDepartment creates a new department
// POST /api/departments
func (h *Handlers) CreateDepartment(c *fiber.Ctx) error {
	var req catalog.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return catalog.ErrInvalidName().WithDetail("parse_error", err.Error())
	}

	department, err := h.service.CreateDepartment(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(department)
}

// UpdateDepartment renames a department
// PUT /api/departments/:id
func (h *Handlers) UpdateDepartment(c *fiber.Ctx) error {
	id := kernel.NewDepartmentID(kernel.ParseID(c.Params("id")))
	if id.IsZero() {
		return catalog.ErrDepartmentNotFound().WithDetail("id", c.Params("id"))
	}

	var req catalog.UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return catalog.ErrInvalidName().WithDetail("parse_error", err.Error())
	}

	department, err := h.service.UpdateDepartment(c.Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(department)
}

// DeleteDepartment deletes a department without jobs
// DELETE /api/departments/:id
func (h *Handlers) DeleteDepartment(c *fiber.Ctx) error {
	id := kernel.NewDepartmentID(kernel.ParseID(c.Params("id")))
	if id.IsZero() {
		return catalog.ErrDepartmentNotFound().WithDetail("id", c.Params("id"))
	}

	if err := h.service.DeleteDepartment(c.Context(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ============================================================================
// Skills
// ============================================================================

// ListSkills retrieves all skills
// GET /api/skills
func (h *Handlers) ListSkills(c *fiber.Ctx) error {
	skills, err := h.service.ListSkills(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(skills)
}

// GetSkill retrieves a skill by ID
// GET /api/skills/:id
func (h *Handlers) GetSkill(c *fiber.Ctx) error {
	id := kernel.NewSkillID(kernel.ParseID(c.Params("id")))
	if id.IsZero() {
		return catalog.ErrSkillNotFound().WithDetail("id", c.Params("id"))
	}

	skill, err := h.service.GetSkill(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(skill)
}

// CreateSkill creates a new skill
// POST /api/skills
func (h *Handlers) CreateSkill(c *fiber.Ctx) error {
	var req catalog.CreateSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return catalog.ErrInvalidName().WithDetail("parse_error", err.Error())
	}

	skill, err := h.service.CreateSkill(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(skill)
}

// UpdateSkill renames a skill
// PUT /api/skills/:id
func (h *Handlers) UpdateSkill(c *fiber.Ctx) error {
	id := kernel.NewSkillID(kernel.ParseID(c.Params("id")))
	if id.IsZero() {
		return catalog.ErrSkillNotFound().WithDetail("id", c.Params("id"))
	}

	var req catalog.UpdateSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return catalog.ErrInvalidName().WithDetail("parse_error", err.Error())
	}

	skill, err := h.service.UpdateSkill(c.Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(skill)
}

// DeleteSkill deletes a skill and its job and CV references
// DELETE /api/skills/:id
func (h *Handlers) DeleteSkill(c *fiber.Ctx) error {
	id := kernel.NewSkillID(kernel.ParseID(c.Params("id")))
	if id.IsZero() {
		return catalog.ErrSkillNotFound().WithDetail("id", c.Params("id"))
	}

	if err := h.service.DeleteSkill(c.Context(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterRoutes registers all catalog routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	sectors := app.Group("/api/sectors")

	sectors.Get("/", authMiddleware.Authenticate(), handlers.ListSectors)
	sectors.Get("/:id", authMiddleware.Authenticate(), handlers.GetSector)
	sectors.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleAdmin)),
		handlers.CreateSector,
	)
	sectors.Put("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleAdmin)),
		handlers.UpdateSector,
	)
	sectors.Delete("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleAdmin)),
		handlers.DeleteSector,
	)

	departments := app.Group("/api/departments")

	departments.Get("/", authMiddleware.Authenticate(), handlers.ListDepartments)
	departments.Get("/:id", authMiddleware.Authenticate(), handlers.GetDepartment)
	departments.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleAdmin)),
		handlers.CreateDepartment,
	)
	departments.Put("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleAdmin)),
		handlers.UpdateDepartment,
	)
	departments.Delete("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleAdmin)),
		handlers.DeleteDepartment,
	)

	skills := app.Group("/api/skills")

	skills.Get("/", authMiddleware.Authenticate(), handlers.ListSkills)
	skills.Get("/:id", authMiddleware.Authenticate(), handlers.GetSkill)
	skills.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleAdmin)),
		handlers.CreateSkill,
	)
	skills.Put("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleAdmin)),
		handlers.UpdateSkill,
	)
	skills.Delete("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleAdmin)),
		handlers.DeleteSkill,
	)
}
