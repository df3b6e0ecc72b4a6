package catalog

import (
	"net/http"

	"github.com/openhire/jobportal/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("CATALOG")

// Error codes
var (
	CodeSectorNotFound       = ErrRegistry.Register("SECTOR_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Sector not found")
	CodeDepartmentNotFound   = ErrRegistry.Register("DEPARTMENT_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Department not found")
	CodeSkillNotFound        = ErrRegistry.Register("SKILL_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Skill not found")
	CodeNameAlreadyExists    = ErrRegistry.Register("NAME_ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "A catalog entry with this name already exists")
	CodeInvalidName          = ErrRegistry.Register("INVALID_NAME", errx.TypeValidation, http.StatusBadRequest, "Name must not be empty")
	CodeSectorHasCompanies   = ErrRegistry.Register("SECTOR_HAS_COMPANIES", errx.TypeBusiness, http.StatusConflict, "Sector still has companies assigned and cannot be deleted")
	CodeDepartmentHasJobs    = ErrRegistry.Register("DEPARTMENT_HAS_JOBS", errx.TypeBusiness, http.StatusConflict, "Department still has jobs assigned and cannot be deleted")
	CodeDepartmentHasWorkers = ErrRegistry.Register("DEPARTMENT_HAS_WORKERS", errx.TypeBusiness, http.StatusConflict, "Department still has workers assigned and cannot be deleted")
)

// Helper functions
func ErrSectorNotFound() *errx.Error {
	return ErrRegistry.New(CodeSectorNotFound)
}

func ErrDepartmentNotFound() *errx.Error {
	return ErrRegistry.New(CodeDepartmentNotFound)
}

func ErrSkillNotFound() *errx.Error {
	return ErrRegistry.New(CodeSkillNotFound)
}

func ErrNameAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeNameAlreadyExists)
}

func ErrInvalidName() *errx.Error {
	return ErrRegistry.New(CodeInvalidName)
}

func ErrSectorHasCompanies() *errx.Error {
	return ErrRegistry.New(CodeSectorHasCompanies)
}

func ErrDepartmentHasJobs() *errx.Error {
	return ErrRegistry.New(CodeDepartmentHasJobs)
}

func ErrDepartmentHasWorkers() *errx.Error {
	return ErrRegistry.New(CodeDepartmentHasWorkers)
}
