package user

import (
	"net/http"

	"github.com/openhire/jobportal/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("USER")

// Error codes
var (
	CodeUserNotFound       = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "User not found")
	CodeEmailAlreadyExists = ErrRegistry.Register("EMAIL_ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "A user with this email already exists")
	CodeLastAdminProtected = ErrRegistry.Register("LAST_ADMIN_PROTECTED", errx.TypeBusiness, http.StatusConflict, "The last admin account cannot be removed or demoted")
	CodeInvalidRole        = ErrRegistry.Register("INVALID_ROLE", errx.TypeValidation, http.StatusBadRequest, "Invalid user role")
	CodeInvalidPassword    = ErrRegistry.Register("INVALID_PASSWORD", errx.TypeValidation, http.StatusBadRequest, "Current password does not match")
	CodeInvalidUser        = ErrRegistry.Register("INVALID_USER", errx.TypeValidation, http.StatusBadRequest, "Invalid user data")
	CodeForbidden          = ErrRegistry.Register("FORBIDDEN", errx.TypeAuthorization, http.StatusForbidden, "Insufficient permissions")
)

// Helper functions
func ErrUserNotFound() *errx.Error {
	return ErrRegistry.New(CodeUserNotFound)
}

func ErrEmailAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeEmailAlreadyExists)
}

func ErrLastAdminProtected() *errx.Error {
	return ErrRegistry.New(CodeLastAdminProtected)
}

func ErrInvalidRole() *errx.Error {
	return ErrRegistry.New(CodeInvalidRole)
}

func ErrInvalidPassword() *errx.Error {
	return ErrRegistry.New(CodeInvalidPassword)
}

func ErrInvalidUser() *errx.Error {
	return ErrRegistry.New(CodeInvalidUser)
}

func ErrForbidden() *errx.Error {
	return ErrRegistry.New(CodeForbidden)
}
