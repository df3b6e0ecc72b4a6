package userauth

import (
	"context"
	"testing"

	"github.com/openhire/jobportal/pkg/errx"
	"github.com/openhire/jobportal/pkg/iam/auth"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/user"
	"github.com/openhire/jobportal/portal/user/usersrv"
)

type fakeUserRepo struct {
	users  map[kernel.UserID]*user.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[kernel.UserID]*user.User), nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	u.ID = kernel.NewUserID(f.nextID)
	f.nextID++
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, id kernel.UserID, u *user.User) error {
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id kernel.UserID) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email kernel.Email) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound()
}

func (f *fakeUserRepo) Delete(context.Context, kernel.UserID) error { return nil }
func (f *fakeUserRepo) List(context.Context, user.ListUsersRequest) (*kernel.Paginated[user.UserResponse], error) {
	return nil, nil
}
func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email kernel.Email) (bool, error) {
	_, err := f.GetByEmail(context.Background(), email)
	return err == nil, nil
}
func (f *fakeUserRepo) CountByRole(context.Context, user.Role) (int64, error) { return 0, nil }
func (f *fakeUserRepo) Count(context.Context) (int64, error) { return 0, nil }
func (f *fakeUserRepo) UpdateRole(context.Context, kernel.UserID, user.Role) error {
	return nil
}
func (f *fakeUserRepo) UpdatePasswordHash(context.Context, kernel.UserID, string) error {
	return nil
}

type fakePasswords struct{}

func (fakePasswords) HashPassword(plain string) (string, error) { return "hash:" + plain, nil }
func (fakePasswords) VerifyPassword(hash, plain string) bool { return hash == "hash:"+plain }

type fakeTokens struct{}

func (fakeTokens) GenerateAccessToken(userID kernel.UserID, _ kernel.Email, _ string) (string, error) {
	return "token-for-" + userID.String(), nil
}
func (fakeTokens) ValidateAccessToken(string) (*auth.Claims, error) {
	return nil, auth.ErrInvalidToken()
}

type fakeTokenStore struct {
	revoked map[string]bool
}

func (f *fakeTokenStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return f.revoked[tokenID], nil
}

func (f *fakeTokenStore) Revoke(_ context.Context, tokenID string, _ *auth.Claims) error {
	f.revoked[tokenID] = true
	return nil
}

func newTestService() (*AuthService, *fakeUserRepo, *fakeTokenStore) {
	repo := newFakeUserRepo()
	users := usersrv.NewUserService(repo, fakePasswords{})
	store := &fakeTokenStore{revoked: make(map[string]bool)}
	return NewAuthService(users, repo, fakePasswords{}, fakeTokens{}, store), repo, store
}

func TestRegisterDefaultsToJobSeeker(t *testing.T) {
	svc, repo, _ := newTestService()

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Ada",
		Surname:  "Lovelace",
		Email:    "ada@example.com",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Token == "" {
		t.Error("registration must hand out a token")
	}
	if resp.User.Role != user.RoleJobSeeker {
		t.Errorf("role = %q, want %q", resp.User.Role, user.RoleJobSeeker)
	}
	if len(repo.users) != 1 {
		t.Error("user not persisted")
	}
}

func TestRegisterEmployerCarriesCompany(t *testing.T) {
	svc, repo, _ := newTestService()
	companyID := kernel.NewCompanyID(5)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Name:      "Grace",
		Surname:   "Hopper",
		Email:     "grace@example.com",
		Password:  "secret",
		Role:      user.RoleEmployer,
		CompanyID: &companyID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := repo.users[resp.User.ID]
	if stored.CompanyID == nil || *stored.CompanyID != companyID {
		t.Error("employer registration must persist the company association")
	}
}

func TestRegisterSeekerIgnoresCompany(t *testing.T) {
	svc, repo, _ := newTestService()
	companyID := kernel.NewCompanyID(5)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Name:      "Ada",
		Surname:   "Lovelace",
		Email:     "ada@example.com",
		Password:  "secret",
		CompanyID: &companyID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.users[resp.User.ID].CompanyID != nil {
		t.Error("seeker registration must not persist a company association")
	}
}

func TestRegisterRefusesAdminRole(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Mallory",
		Surname:  "Intruder",
		Email:    "mallory@example.com",
		Password: "secret",
		Role:     user.RoleAdmin,
	})
	if !errx.IsCode(err, user.CodeInvalidRole) {
		t.Fatalf("error = %v, want %s", err, user.CodeInvalidRole)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	req := RegisterRequest{Name: "Ada", Surname: "Lovelace", Email: "ada@example.com", Password: "secret"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := svc.Register(ctx, req)
	if !errx.IsCode(err, user.CodeEmailAlreadyExists) {
		t.Fatalf("error = %v, want %s", err, user.CodeEmailAlreadyExists)
	}
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterRequest{
		Name: "Ada", Surname: "Lovelace", Email: "ada@example.com", Password: "secret",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	resp, err := svc.Login(ctx, LoginRequest{Email: "ada@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.Token == "" {
		t.Error("login must hand out a token")
	}
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterRequest{
		Name: "Ada", Surname: "Lovelace", Email: "ada@example.com", Password: "secret",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Wrong password and unknown email both report the same error
	_, err := svc.Login(ctx, LoginRequest{Email: "ada@example.com", Password: "wrong"})
	if !errx.IsCode(err, auth.CodeInvalidCredentials) {
		t.Fatalf("error = %v, want %s", err, auth.CodeInvalidCredentials)
	}

	_, err = svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "secret"})
	if !errx.IsCode(err, auth.CodeInvalidCredentials) {
		t.Fatalf("error = %v, want %s", err, auth.CodeInvalidCredentials)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _, store := newTestService()

	claims := &auth.Claims{TokenID: "jti-1", UserID: kernel.NewUserID(1)}
	if err := svc.Logout(context.Background(), claims); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if !store.revoked["jti-1"] {
		t.Error("token must be revoked on logout")
	}
}
