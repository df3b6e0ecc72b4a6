// Package access centralizes role-scoped visibility: every service resolves
// the caller into a Scope here instead of re-deriving ownership rules.
package access

import (
	"context"

	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/user"
)

// Scope is the visibility a caller has over rows, derived from identity and role
type Scope struct {
	UserID    kernel.UserID
	Role      user.Role
	CompanyID *kernel.CompanyID
}

// IsAdmin reports unrestricted scope
func (s Scope) IsAdmin() bool {
	return s.Role == user.RoleAdmin
}

// IsEmployer reports company-restricted scope
func (s Scope) IsEmployer() bool {
	return s.Role == user.RoleEmployer
}

// IsJobSeeker reports owner-restricted scope
func (s Scope) IsJobSeeker() bool {
	return s.Role == user.RoleJobSeeker
}

// RequireCompany returns the employer's company id; fails when the account
// has no company association
func (s Scope) RequireCompany() (kernel.CompanyID, error) {
	if s.CompanyID == nil {
		return 0, ErrNoCompanyAssociation().WithDetail("user_id", s.UserID.String())
	}
	return *s.CompanyID, nil
}

// OwnsRow reports whether an owner-restricted scope covers a row owned by ownerID.
// Admin scope covers every row.
func (s Scope) OwnsRow(ownerID kernel.UserID) bool {
	if s.IsAdmin() {
		return true
	}
	return s.UserID == ownerID
}

// CoversCompany reports whether the scope covers rows of the given company.
// Admin scope covers every company; seeker scope covers none.
func (s Scope) CoversCompany(companyID kernel.CompanyID) bool {
	if s.IsAdmin() {
		return true
	}
	return s.CompanyID != nil && *s.CompanyID == companyID
}

// Resolver turns a caller identity into a Scope
type Resolver struct {
	userRepo user.Repository
}

// NewResolver creates an access scope resolver
func NewResolver(userRepo user.Repository) *Resolver {
	return &Resolver{
		userRepo: userRepo,
	}
}

// Resolve loads the caller and derives their scope. The lookup also verifies
// the account still exists, so stale tokens cannot act on deleted users.
func (r *Resolver) Resolve(ctx context.Context, callerID kernel.UserID) (Scope, error) {
	caller, err := r.userRepo.GetByID(ctx, callerID)
	if err != nil {
		return Scope{}, user.ErrUserNotFound().WithDetail("user_id", callerID.String())
	}

	return Scope{
		UserID:    caller.ID,
		Role:      caller.Role,
		CompanyID: caller.CompanyID,
	}, nil
}
