package userauth

import (
	"context"

	"github.com/openhire/jobportal/pkg/errx"
	"github.com/openhire/jobportal/pkg/iam/auth"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/user"
	"github.com/openhire/jobportal/portal/user/usersrv"
)

// AuthService handles registration, login and token revocation
type AuthService struct {
	users      *usersrv.UserService
	userRepo   user.Repository
	passwords  auth.PasswordService
	tokens     auth.TokenService
	tokenStore auth.TokenStore
}

// NewAuthService creates a new instance of the auth service
func NewAuthService(
	users *usersrv.UserService,
	userRepo user.Repository,
	passwords auth.PasswordService,
	tokens auth.TokenService,
	tokenStore auth.TokenStore,
) *AuthService {
	return &AuthService{
		users:      users,
		userRepo:   userRepo,
		passwords:  passwords,
		tokens:     tokens,
		tokenStore: tokenStore,
	}
}

// Register creates an account and logs it in. Self-service registration
// only hands out the Employer and JobSeeker roles; admin accounts are
// created through the admin surface.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	role := req.Role
	if role == "" {
		role = user.RoleJobSeeker
	}
	if role == user.RoleAdmin || !role.IsValid() {
		return nil, user.ErrInvalidRole().WithDetail("role", string(role))
	}

	// The company association only applies to employer accounts
	var companyID *kernel.CompanyID
	if role == user.RoleEmployer {
		companyID = req.CompanyID
	}

	created, err := s.users.CreateUser(ctx, user.CreateUserRequest{
		Name:      req.Name,
		Surname:   req.Surname,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
		Role:      role,
		CompanyID: companyID,
	})
	if err != nil {
		return nil, err
	}

	return s.issueToken(ctx, created)
}

// Login verifies credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Not found is reported as bad credentials so emails cannot be probed
		return nil, auth.ErrInvalidCredentials()
	}

	if !s.passwords.VerifyPassword(u.PasswordHash, req.Password) {
		return nil, auth.ErrInvalidCredentials()
	}

	return s.issueToken(ctx, u)
}

// Logout revokes the caller's token so it cannot be replayed
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if err := s.tokenStore.Revoke(ctx, claims.TokenID, claims); err != nil {
		return errx.Wrap(err, "failed to revoke token", errx.TypeInternal)
	}
	return nil
}

// Me returns the profile of the authenticated user
func (s *AuthService) Me(ctx context.Context, claims *auth.Claims) (*user.UserResponse, error) {
	return s.users.GetProfile(ctx, claims.UserID)
}

func (s *AuthService) issueToken(ctx context.Context, u *user.User) (*AuthResponse, error) {
	token, err := s.tokens.GenerateAccessToken(u.ID, u.Email, string(u.Role))
	if err != nil {
		return nil, err
	}

	profile, err := s.users.GetProfile(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Token: token,
		User:  profile,
	}, nil
}
