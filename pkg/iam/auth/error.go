package auth

import (
	"net/http"

	"github.com/openhire/jobportal/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("AUTH")

// Error codes
var (
	CodeInvalidCredentials = ErrRegistry.Register("INVALID_CREDENTIALS", errx.TypeAuthorization, http.StatusUnauthorized, "Invalid email or password")
	CodeInvalidToken       = ErrRegistry.Register("INVALID_TOKEN", errx.TypeAuthorization, http.StatusUnauthorized, "Invalid or expired token")
	CodeTokenRevoked       = ErrRegistry.Register("TOKEN_REVOKED", errx.TypeAuthorization, http.StatusUnauthorized, "Token has been revoked")
	CodeMissingToken       = ErrRegistry.Register("MISSING_TOKEN", errx.TypeAuthorization, http.StatusUnauthorized, "Missing authorization header")
	CodeForbiddenRole      = ErrRegistry.Register("FORBIDDEN_ROLE", errx.TypeAuthorization, http.StatusForbidden, "Role is not allowed to perform this operation")
)

// Helper functions
func ErrInvalidCredentials() *errx.Error {
	return ErrRegistry.New(CodeInvalidCredentials)
}

func ErrInvalidToken() *errx.Error {
	return ErrRegistry.New(CodeInvalidToken)
}

func ErrTokenRevoked() *errx.Error {
	return ErrRegistry.New(CodeTokenRevoked)
}

func ErrMissingToken() *errx.Error {
	return ErrRegistry.New(CodeMissingToken)
}

func ErrForbiddenRole() *errx.Error {
	return ErrRegistry.New(CodeForbiddenRole)
}
