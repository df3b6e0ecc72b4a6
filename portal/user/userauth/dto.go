package userauth

import (
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/user"
)

// RegisterRequest - DTO for self-service registration. CompanyID associates
// an employer account with its company.
type RegisterRequest struct {
	Name      string            `json:"name" validate:"required"`
	Surname   string            `json:"surname" validate:"required"`
	Email     kernel.Email      `json:"email" validate:"required"`
	Phone     *string           `json:"phone,omitempty"`
	Password  string            `json:"password" validate:"required"`
	Role      user.Role         `json:"role,omitempty"`
	CompanyID *kernel.CompanyID `json:"companyId,omitempty"`
}

// LoginRequest - DTO for credential login
type LoginRequest struct {
	Email    kernel.Email `json:"email" validate:"required"`
	Password string       `json:"password" validate:"required"`
}

// AuthResponse - DTO returned after a successful register or login
type AuthResponse struct {
	Token string             `json:"token"`
	User  *user.UserResponse `json:"user"`
}
