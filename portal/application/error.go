package application

import (
	"net/http"

	"github.com/openhire/jobportal/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("APPLICATION")

// Error codes
var (
	CodeApplicationNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Application not found")
	CodeAlreadyApplied      = ErrRegistry.Register("ALREADY_APPLIED", errx.TypeConflict, http.StatusConflict, "User has already applied to this job")
	CodeInvalidStatus       = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Unknown application status")
	CodeStatusLocked        = ErrRegistry.Register("STATUS_LOCKED", errx.TypeBusiness, http.StatusConflict, "Application has already been decided")
	CodeNotPending          = ErrRegistry.Register("NOT_PENDING", errx.TypeBusiness, http.StatusConflict, "Only pending applications can be withdrawn")
)

// Helper functions
func ErrApplicationNotFound() *errx.Error {
	return ErrRegistry.New(CodeApplicationNotFound)
}

func ErrAlreadyApplied() *errx.Error {
	return ErrRegistry.New(CodeAlreadyApplied)
}

func ErrInvalidStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus)
}

func ErrStatusLocked() *errx.Error {
	return ErrRegistry.New(CodeStatusLocked)
}

func ErrNotPending() *errx.Error {
	return ErrRegistry.New(CodeNotPending)
}
