package access

import (
	"net/http"

	"github.com/openhire/jobportal/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("ACCESS")

// Error codes
var (
	CodeNoCompanyAssociation = ErrRegistry.Register("NO_COMPANY_ASSOCIATION", errx.TypeBusiness, http.StatusBadRequest, "User must be associated with a company")
	CodeForbidden            = ErrRegistry.Register("FORBIDDEN", errx.TypeAuthorization, http.StatusForbidden, "Caller is not permitted to access this resource")
)

// Helper functions
func ErrNoCompanyAssociation() *errx.Error {
	return ErrRegistry.New(CodeNoCompanyAssociation)
}

func ErrForbidden() *errx.Error {
	return ErrRegistry.New(CodeForbidden)
}
