package user

import (
	"time"

	"github.com/openhire/jobportal/pkg/kernel"
)

// CreateUserRequest - DTO for creating a user (admin surface)
type CreateUserRequest struct {
	Name      string            `json:"name" validate:"required"`
	Surname   string            `json:"surname" validate:"required"`
	Email     kernel.Email      `json:"email" validate:"required"`
	Phone     *string           `json:"phone,omitempty"`
	Password  string            `json:"password" validate:"required"`
	Role      Role              `json:"role" validate:"required"`
	CompanyID *kernel.CompanyID `json:"company_id,omitempty"`
}

// UpdateProfileRequest - DTO for a user updating their own profile
type UpdateProfileRequest struct {
	Name    *string `json:"name,omitempty"`
	Surname *string `json:"surname,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

// ChangePasswordRequest - DTO for changing the caller's password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// ChangeRoleRequest - DTO for the admin role-change operation
type ChangeRoleRequest struct {
	Role Role `json:"role" validate:"required"`
}

// ListUsersRequest - DTO for the admin user listing
type ListUsersRequest struct {
	Search     string                   `json:"search,omitempty"`
	Role       *Role                    `json:"role,omitempty"`
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// UserResponse - DTO for returning user data
type UserResponse struct {
	ID          kernel.UserID     `json:"user_id"`
	Name        string            `json:"name"`
	Surname     string            `json:"surname"`
	Email       kernel.Email      `json:"email"`
	Phone       *string           `json:"phone,omitempty"`
	Role        Role              `json:"role"`
	CompanyID   *kernel.CompanyID `json:"company_id,omitempty"`
	CompanyName *string           `json:"company_name,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}
