package favoriteapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/openhire/jobportal/pkg/iam/auth"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/favorite"
	"github.com/openhire/jobportal/portal/favorite/favoritesrv"
	"github.com/openhire/jobportal/portal/job"
	"github.com/openhire/jobportal/portal/user"
)

// Handlers provides HTTP handlers for favorite operations
type Handlers struct {
	service *favoritesrv.FavoriteService
}

// NewHandlers creates a new favorite handlers instance
func NewHandlers(service *favoritesrv.FavoriteService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ListFavorites retrieves the caller's saved jobs
// GET /api/favorites
func (h *Handlers) ListFavorites(c *fiber.Ctx) error {
	claims, ok := auth.GetClaims(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	favorites, err := h.service.ListFavorites(c.Context(), claims.UserID, parsePaginationOptions(c))
	if err != nil {
		return err
	}

	return c.JSON(favorites)
}

// AddFavorite saves a job for the caller
// POST /api/favorites/:jobId
func (h *Handlers) AddFavorite(c *fiber.Ctx) error {
	claims, ok := auth.GetClaims(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	jobID := kernel.NewJobID(kernel.ParseID(c.Params("jobId")))
	if jobID.IsZero() {
		return job.ErrJobNotFound().WithDetail("job_id", c.Params("jobId"))
	}

	fav, err := h.service.AddFavorite(c.Context(), claims.UserID, jobID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fav)
}

// RemoveFavorite removes a job from the caller's saved list
// DELETE /api/favorites/:jobId
func (h *Handlers) RemoveFavorite(c *fiber.Ctx) error {
	claims, ok := auth.GetClaims(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	jobID := kernel.NewJobID(kernel.ParseID(c.Params("jobId")))
	if jobID.IsZero() {
		return favorite.ErrFavoriteNotFound().WithDetail("job_id", c.Params("jobId"))
	}

	if err := h.service.RemoveFavorite(c.Context(), claims.UserID, jobID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
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

// RegisterRoutes registers all favorite routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/favorites")

	api.Get("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleJobSeeker)),
		handlers.ListFavorites,
	)

	api.Post("/:jobId",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleJobSeeker)),
		handlers.AddFavorite,
	)

	api.Delete("/:jobId",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleJobSeeker)),
		handlers.RemoveFavorite,
	)
}
