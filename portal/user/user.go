package user

import (
	"time"

	"github.com/openhire/jobportal/pkg/kernel"
)

// Role represents the access role of a user account
type Role string

const (
	RoleAdmin     Role = "Admin"     // Full platform access
	RoleEmployer  Role = "Employer"  // Posts jobs on behalf of a company
	RoleJobSeeker Role = "JobSeeker" // Applies to jobs
)

// IsValid checks the role against the closed set
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEmployer, RoleJobSeeker:
		return true
	}
	return false
}

type User struct {
	ID           kernel.UserID     `db:"id" json:"user_id"`
	CompanyID    *kernel.CompanyID `db:"company_id" json:"company_id,omitempty"`
	Name         string            `db:"name" json:"name"`
	Surname      string            `db:"surname" json:"surname"`
	Email        kernel.Email      `db:"email" json:"email"`
	Phone        *string           `db:"phone" json:"phone,omitempty"`
	PasswordHash string            `db:"password_hash" json:"-"`
	Role         Role              `db:"role" json:"role"`
	CreatedAt    time.Time         `db:"created_at" json:"created_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsAdmin checks if the user holds the Admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsEmployer checks if the user holds the Employer role
func (u *User) IsEmployer() bool {
	return u.Role == RoleEmployer
}

// IsJobSeeker checks if the user holds the JobSeeker role
func (u *User) IsJobSeeker() bool {
	return u.Role == RoleJobSeeker
}

// HasCompany checks if the user is associated with a company
func (u *User) HasCompany() bool {
	return u.CompanyID != nil
}

// FullName returns the display name
func (u *User) FullName() string {
	return u.Name + " " + u.Surname
}
