package cv

import (
	"net/http"

	"github.com/openhire/jobportal/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("CV")

// Error codes
var (
	CodeCVNotFound      = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "CV not found")
	CodeNotOwner        = ErrRegistry.Register("NOT_OWNER", errx.TypeAuthorization, http.StatusForbidden, "CV belongs to another user")
	CodeInvalidSkillSet = ErrRegistry.Register("INVALID_SKILL_SET", errx.TypeValidation, http.StatusBadRequest, "Skill set contains duplicate or unknown skills")
)

// Helper functions
func ErrCVNotFound() *errx.Error {
	return ErrRegistry.New(CodeCVNotFound)
}

func ErrNotOwner() *errx.Error {
	return ErrRegistry.New(CodeNotOwner)
}

func ErrInvalidSkillSet() *errx.Error {
	return ErrRegistry.New(CodeInvalidSkillSet)
}
