package company

import (
	"net/http"

	"github.com/openhire/jobportal/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("COMPANY")

// Error codes
var (
	CodeCompanyNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Company not found")
	CodeHasDependents   = ErrRegistry.Register("HAS_DEPENDENTS", errx.TypeBusiness, http.StatusConflict, "Company still has employees or job postings and cannot be deleted")
	CodeInvalidCompany  = ErrRegistry.Register("INVALID_COMPANY", errx.TypeValidation, http.StatusBadRequest, "Company name must not be empty")
	CodeWorkerNotFound  = ErrRegistry.Register("WORKER_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Company worker not found")
	CodeWorkerAssigned  = ErrRegistry.Register("WORKER_ALREADY_ASSIGNED", errx.TypeConflict, http.StatusConflict, "User is already assigned to this company")
)

// Helper functions
func ErrCompanyNotFound() *errx.Error {
	return ErrRegistry.New(CodeCompanyNotFound)
}

func ErrHasDependents() *errx.Error {
	return ErrRegistry.New(CodeHasDependents)
}

func ErrInvalidCompany() *errx.Error {
	return ErrRegistry.New(CodeInvalidCompany)
}

func ErrWorkerNotFound() *errx.Error {
	return ErrRegistry.New(CodeWorkerNotFound)
}

func ErrWorkerAlreadyAssigned() *errx.Error {
	return ErrRegistry.New(CodeWorkerAssigned)
}
