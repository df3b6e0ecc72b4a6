package job

import (
	"net/http"

	"github.com/openhire/jobportal/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("JOB")

// Error codes
var (
	CodeJobNotFound        = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job not found")
	CodeInvalidJob         = ErrRegistry.Register("INVALID_JOB", errx.TypeValidation, http.StatusBadRequest, "Job title must not be empty")
	CodeInvalidSkillSet    = ErrRegistry.Register("INVALID_SKILL_SET", errx.TypeValidation, http.StatusBadRequest, "Skill set contains duplicate or unknown skills")
	CodeInvalidSalaryRange = ErrRegistry.Register("INVALID_SALARY_RANGE", errx.TypeValidation, http.StatusBadRequest, "Minimum salary must not exceed maximum salary")
	CodeNotOwner           = ErrRegistry.Register("NOT_OWNER", errx.TypeAuthorization, http.StatusForbidden, "Job belongs to another employer")
)

// Helper functions
func ErrJobNotFound() *errx.Error {
	return ErrRegistry.New(CodeJobNotFound)
}

func ErrInvalidJob() *errx.Error {
	return ErrRegistry.New(CodeInvalidJob)
}

func ErrInvalidSkillSet() *errx.Error {
	return ErrRegistry.New(CodeInvalidSkillSet)
}

func ErrInvalidSalaryRange() *errx.Error {
	return ErrRegistry.New(CodeInvalidSalaryRange)
}

func ErrNotOwner() *errx.Error {
	return ErrRegistry.New(CodeNotOwner)
}
