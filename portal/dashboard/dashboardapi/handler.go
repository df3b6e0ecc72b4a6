package dashboardapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/openhire/jobportal/pkg/iam/auth"
	"github.com/openhire/jobportal/portal/dashboard/dashboardsrv"
	"github.com/openhire/jobportal/portal/user"
)

// Handlers provides HTTP handlers for the admin dashboard
type Handlers struct {
	service *dashboardsrv.DashboardService
}

// NewHandlers creates a new dashboard handlers instance
func NewHandlers(service *dashboardsrv.DashboardService) *Handlers {
	return &Handlers{service: service}
}

// GetStats returns the platform statistics snapshot
// GET /api/admin/dashboard
func (h *Handlers) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(stats)
}

// RegisterRoutes registers the dashboard routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/admin/dashboard",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleAdmin)),
	)

	api.Get("/", handlers.GetStats)
}
