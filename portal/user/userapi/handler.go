package userapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/openhire/jobportal/pkg/iam/auth"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/user"
	"github.com/openhire/jobportal/portal/user/userauth"
	"github.com/openhire/jobportal/portal/user/usersrv"
)

// Handlers provides HTTP handlers for accounts, profiles and authentication
type Handlers struct {
	users *usersrv.UserService
	auth  *userauth.AuthService
}

// NewHandlers creates a new user handlers instance
func NewHandlers(users *usersrv.UserService, authService *userauth.AuthService) *Handlers {
	return &Handlers{
		users: users,
		auth:  authService,
	}
}

// Register creates an account and returns a token
// POST /api/auth/register
func (h *Handlers) Register(c *fiber.Ctx) error {
	var req userauth.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrInvalidUser().WithDetail("parse_error", err.Error())
	}

	resp, err := h.auth.Register(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login verifies credentials and returns a token
// POST /api/auth/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req userauth.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrInvalidUser().WithDetail("parse_error", err.Error())
	}

	resp, err := h.auth.Login(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// Logout revokes the caller's token
// POST /api/auth/logout
func (h *Handlers) Logout(c *fiber.Ctx) error {
	claims, ok := auth.GetClaims(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	if err := h.auth.Logout(c.Context(), claims); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Me returns the authenticated caller's profile
// GET /api/auth/me
func (h *Handlers) Me(c *fiber.Ctx) error {
	claims, ok := auth.GetClaims(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	resp, err := h.auth.Me(c.Context(), claims)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// UpdateProfile updates the caller's own profile fields
// PUT /api/profile
func (h *Handlers) UpdateProfile(c *fiber.Ctx) error {
	claims, ok := auth.GetClaims(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req user.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrInvalidUser().WithDetail("parse_error", err.Error())
	}

	resp, err := h.users.UpdateProfile(c.Context(), claims.UserID, req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ChangePassword replaces the caller's password
// POST /api/profile/password
func (h *Handlers) ChangePassword(c *fiber.Ctx) error {
	claims, ok := auth.GetClaims(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req user.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrInvalidUser().WithDetail("parse_error", err.Error())
	}

	if err := h.users.ChangePassword(c.Context(), claims.UserID, req); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ListUsers retrieves accounts matching the search filters
// GET /api/admin/users
func (h *Handlers) ListUsers(c *fiber.Ctx) error {
	req := user.ListUsersRequest{
		Search:     c.Query("search"),
		Pagination: parsePaginationOptions(c),
	}

	if role := c.Query("role"); role != "" {
		r := user.Role(role)
		req.Role = &r
	}

	users, err := h.users.ListUsers(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(users)
}

// GetUser retrieves an account by ID
// GET /api/admin/users/:id
func (h *Handlers) GetUser(c *fiber.Ctx) error {
	userID := kernel.NewUserID(kernel.ParseID(c.Params("id")))
	if userID.IsZero() {
		return user.ErrUserNotFound().WithDetail("id", c.Params("id"))
	}

	resp, err := h.users.GetProfile(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// CreateUser creates an account with an explicit role
// POST /api/admin/users
func (h *Handlers) CreateUser(c *fiber.Ctx) error {
	var req user.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrInvalidUser().WithDetail("parse_error", err.Error())
	}

	created, err := h.users.CreateUser(c.Context(), req)
	if err != nil {
		return err
	}

	resp, err := h.users.GetProfile(c.Context(), created.ID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ChangeUserRole moves an account to a new role
// PUT /api/admin/users/:id/role
func (h *Handlers) ChangeUserRole(c *fiber.Ctx) error {
	userID := kernel.NewUserID(kernel.ParseID(c.Params("id")))
	if userID.IsZero() {
		return user.ErrUserNotFound().WithDetail("id", c.Params("id"))
	}

	var req user.ChangeRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrInvalidUser().WithDetail("parse_error", err.Error())
	}

	if err := h.users.ChangeUserRole(c.Context(), userID, req.Role); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteUser removes an account
// DELETE /api/admin/users/:id
func (h *Handlers) DeleteUser(c *fiber.Ctx) error {
	userID := kernel.NewUserID(kernel.ParseID(c.Params("id")))
	if userID.IsZero() {
		return user.ErrUserNotFound().WithDetail("id", c.Params("id"))
	}

	if err := h.users.DeleteUser(c.Context(), userID); err != nil {
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

// RegisterRoutes registers auth, profile and admin account routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	authGroup := app.Group("/api/auth")
	authGroup.Post("/register", handlers.Register)
	authGroup.Post("/login", handlers.Login)
	authGroup.Post("/logout", authMiddleware.Authenticate(), handlers.Logout)
	authGroup.Get("/me", authMiddleware.Authenticate(), handlers.Me)

	profile := app.Group("/api/profile", authMiddleware.Authenticate())
	profile.Get("/", handlers.Me)
	profile.Put("/", handlers.UpdateProfile)
	profile.Post("/password", handlers.ChangePassword)

	admin := app.Group("/api/admin/users",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRoles(string(user.RoleAdmin)),
	)
	admin.Get("/", handlers.ListUsers)
	admin.Post("/", handlers.CreateUser)
	admin.Get("/:id", handlers.GetUser)
	admin.Put("/:id/role", handlers.ChangeUserRole)
	admin.Delete("/:id", handlers.DeleteUser)
}
