package access

import (
	"context"
	"testing"

	"github.com/openhire/jobportal/pkg/errx"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/user"
)

type fakeUserRepo struct {
	users map[kernel.UserID]*user.User
}

func (f *fakeUserRepo) Create(context.Context, *user.User) error { return nil }
func (f *fakeUserRepo) Update(context.Context, kernel.UserID, *user.User) error {
	return nil
}
func (f *fakeUserRepo) GetByID(_ context.Context, id kernel.UserID) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrUserNotFound()
	}
	return u, nil
}
func (f *fakeUserRepo) GetByEmail(context.Context, kernel.Email) (*user.User, error) {
	return nil, user.ErrUserNotFound()
}
func (f *fakeUserRepo) Delete(context.Context, kernel.UserID) error { return nil }
func (f *fakeUserRepo) List(context.Context, user.ListUsersRequest) (*kernel.Paginated[user.UserResponse], error) {
	return nil, nil
}
func (f *fakeUserRepo) ExistsByEmail(context.Context, kernel.Email) (bool, error) {
	return false, nil
}
func (f *fakeUserRepo) CountByRole(context.Context, user.Role) (int64, error) { return 0, nil }
func (f *fakeUserRepo) Count(context.Context) (int64, error) { return 0, nil }
func (f *fakeUserRepo) UpdateRole(context.Context, kernel.UserID, user.Role) error {
	return nil
}
func (f *fakeUserRepo) UpdatePasswordHash(context.Context, kernel.UserID, string) error {
	return nil
}

func TestResolve(t *testing.T) {
	companyID := kernel.NewCompanyID(5)
	repo := &fakeUserRepo{users: map[kernel.UserID]*user.User{
		kernel.NewUserID(1): {ID: kernel.NewUserID(1), Role: user.RoleEmployer, CompanyID: &companyID},
	}}
	resolver := NewResolver(repo)

	scope, err := resolver.Resolve(context.Background(), kernel.NewUserID(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !scope.IsEmployer() {
		t.Error("expected employer scope")
	}
	if scope.CompanyID == nil || *scope.CompanyID != companyID {
		t.Error("company id not carried into the scope")
	}
}

func TestResolveDeletedUser(t *testing.T) {
	resolver := NewResolver(&fakeUserRepo{users: map[kernel.UserID]*user.User{}})

	_, err := resolver.Resolve(context.Background(), kernel.NewUserID(42))
	if !errx.IsCode(err, user.CodeUserNotFound) {
		t.Fatalf("error = %v, want %s", err, user.CodeUserNotFound)
	}
}

func TestScopeOwnsRow(t *testing.T) {
	admin := Scope{UserID: kernel.NewUserID(1), Role: user.RoleAdmin}
	seeker := Scope{UserID: kernel.NewUserID(2), Role: user.RoleJobSeeker}

	if !admin.OwnsRow(kernel.NewUserID(99)) {
		t.Error("admin scope must cover every row")
	}
	if !seeker.OwnsRow(kernel.NewUserID(2)) {
		t.Error("seeker scope must cover their own row")
	}
	if seeker.OwnsRow(kernel.NewUserID(3)) {
		t.Error("seeker scope must not cover another user's row")
	}
}

func TestScopeCoversCompany(t *testing.T) {
	companyID := kernel.NewCompanyID(5)
	admin := Scope{UserID: kernel.NewUserID(1), Role: user.RoleAdmin}
	employer := Scope{UserID: kernel.NewUserID(2), Role: user.RoleEmployer, CompanyID: &companyID}
	seeker := Scope{UserID: kernel.NewUserID(3), Role: user.RoleJobSeeker}

	if !admin.CoversCompany(kernel.NewCompanyID(99)) {
		t.Error("admin scope must cover every company")
	}
	if !employer.CoversCompany(companyID) {
		t.Error("employer scope must cover their own company")
	}
	if employer.CoversCompany(kernel.NewCompanyID(99)) {
		t.Error("employer scope must not cover another company")
	}
	if seeker.CoversCompany(companyID) {
		t.Error("seeker scope must not cover any company")
	}
}

func TestRequireCompany(t *testing.T) {
	companyID := kernel.NewCompanyID(5)
	with := Scope{UserID: kernel.NewUserID(1), Role: user.RoleEmployer, CompanyID: &companyID}
	without := Scope{UserID: kernel.NewUserID(2), Role: user.RoleEmployer}

	got, err := with.RequireCompany()
	if err != nil || got != companyID {
		t.Errorf("RequireCompany() = %v, %v", got, err)
	}

	_, err = without.RequireCompany()
	if !errx.IsCode(err, CodeNoCompanyAssociation) {
		t.Fatalf("error = %v, want %s", err, CodeNoCompanyAssociation)
	}
}
