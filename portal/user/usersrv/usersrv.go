package usersrv

import (
	"context"
	"strings"
	"time"

	"github.com/openhire/jobportal/pkg/errx"
	"github.com/openhire/jobportal/pkg/iam/auth"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/user"
)

// UserService provides account management operations
type UserService struct {
	userRepo  user.Repository
	passwords auth.PasswordService
}

// NewUserService creates a new instance of the user service
func NewUserService(userRepo user.Repository, passwords auth.PasswordService) *UserService {
	return &UserService{
		userRepo:  userRepo,
		passwords: passwords,
	}
}

// CreateUser creates an account on behalf of an admin. Emails are unique
// across the platform.
func (s *UserService) CreateUser(ctx context.Context, req user.CreateUserRequest) (*user.User, error) {
	if !req.Role.IsValid() {
		return nil, user.ErrInvalidRole().WithDetail("role", string(req.Role))
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check email", errx.TypeInternal)
	}
	if exists {
		return nil, user.ErrEmailAlreadyExists().WithDetail("email", string(req.Email))
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, errx.Wrap(err, "failed to hash password", errx.TypeInternal)
	}

	newUser := &user.User{
		CompanyID:    req.CompanyID,
		Name:         strings.TrimSpace(req.Name),
		Surname:      strings.TrimSpace(req.Surname),
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         req.Role,
		CreatedAt:    time.Now(),
	}

	// The unique email index backstops the existence check under concurrent
	// registrations
	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	return newUser, nil
}

// GetProfile retrieves a user's profile with their company name
func (s *UserService) GetProfile(ctx context.Context, id kernel.UserID) (*user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, user.ErrUserNotFound().WithDetail("user_id", id.String())
	}

	return s.toResponse(ctx, u), nil
}

// UpdateProfile updates the caller's own name, surname and phone
func (s *UserService) UpdateProfile(ctx context.Context, id kernel.UserID, req user.UpdateProfileRequest) (*user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, user.ErrUserNotFound().WithDetail("user_id", id.String())
	}

	if req.Name != nil {
		u.Name = strings.TrimSpace(*req.Name)
	}
	if req.Surname != nil {
		u.Surname = strings.TrimSpace(*req.Surname)
	}
	if req.Phone != nil {
		u.Phone = req.Phone
	}

	if err := s.userRepo.Update(ctx, id, u); err != nil {
		return nil, errx.Wrap(err, "failed to update profile", errx.TypeInternal)
	}

	return s.toResponse(ctx, u), nil
}

// ChangePassword replaces the caller's credential after verifying the
// current one
func (s *UserService) ChangePassword(ctx context.Context, id kernel.UserID, req user.ChangePasswordRequest) error {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.ErrUserNotFound().WithDetail("user_id", id.String())
	}

	if !s.passwords.VerifyPassword(u.PasswordHash, req.CurrentPassword) {
		return user.ErrInvalidPassword()
	}

	hash, err := s.passwords.HashPassword(req.NewPassword)
	if err != nil {
		return errx.Wrap(err, "failed to hash password", errx.TypeInternal)
	}

	return s.userRepo.UpdatePasswordHash(ctx, id, hash)
}

// ListUsers retrieves accounts matching the admin search filters
func (s *UserService) ListUsers(ctx context.Context, req user.ListUsersRequest) (*kernel.Paginated[user.UserResponse], error) {
	if req.Role != nil && !req.Role.IsValid() {
		return nil, user.ErrInvalidRole().WithDetail("role", string(*req.Role))
	}

	users, err := s.userRepo.List(ctx, req)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list users", errx.TypeInternal)
	}

	return users, nil
}

// ChangeUserRole moves an account to a new role. Demoting the last admin is
// refused so the platform always keeps one administrator.
func (s *UserService) ChangeUserRole(ctx context.Context, id kernel.UserID, newRole user.Role) error {
	if !newRole.IsValid() {
		return user.ErrInvalidRole().WithDetail("role", string(newRole))
	}

	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.ErrUserNotFound().WithDetail("user_id", id.String())
	}

	if u.IsAdmin() && newRole != user.RoleAdmin {
		admins, err := s.userRepo.CountByRole(ctx, user.RoleAdmin)
		if err != nil {
			return errx.Wrap(err, "failed to count admins", errx.TypeInternal)
		}
		if admins <= 1 {
			return user.ErrLastAdminProtected().WithDetail("user_id", id.String())
		}
	}

	return s.userRepo.UpdateRole(ctx, id, newRole)
}

// DeleteUser removes an account. Deleting the last admin is refused.
func (s *UserService) DeleteUser(ctx context.Context, id kernel.UserID) error {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.ErrUserNotFound().WithDetail("user_id", id.String())
	}

	if u.IsAdmin() {
		admins, err := s.userRepo.CountByRole(ctx, user.RoleAdmin)
		if err != nil {
			return errx.Wrap(err, "failed to count admins", errx.TypeInternal)
		}
		if admins <= 1 {
			return user.ErrLastAdminProtected().WithDetail("user_id", id.String())
		}
	}

	return s.userRepo.Delete(ctx, id)
}

// toResponse converts an entity to the response DTO. The company name is
// filled in by the repository's listing queries; here only the raw fields
// are mapped.
func (s *UserService) toResponse(_ context.Context, u *user.User) *user.UserResponse {
	return &user.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Surname:   u.Surname,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		CompanyID: u.CompanyID,
		CreatedAt: u.CreatedAt,
	}
}
