package user

import (
	"context"

	"github.com/openhire/jobportal/pkg/kernel"
)

type Repository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// Update updates an existing user
	Update(ctx context.Context, id kernel.UserID, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id kernel.UserID) (*User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email kernel.Email) (*User, error)

	// Delete deletes a user by ID
	Delete(ctx context.Context, id kernel.UserID) error

	// List retrieves users matching the search filters
	List(ctx context.Context, req ListUsersRequest) (*kernel.Paginated[UserResponse], error)

	// ExistsByEmail checks if a user exists with the given email
	ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error)

	// CountByRole counts users holding a role
	CountByRole(ctx context.Context, role Role) (int64, error)

	// Count counts all users
	Count(ctx context.Context) (int64, error)

	// UpdateRole sets the role of a user
	UpdateRole(ctx context.Context, id kernel.UserID, role Role) error

	// UpdatePasswordHash sets a new credential hash for a user
	UpdatePasswordHash(ctx context.Context, id kernel.UserID, hash string) error
}
