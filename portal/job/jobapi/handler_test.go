package jobapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/catalog"
	"github.com/openhire/jobportal/portal/job"
	"github.com/openhire/jobportal/portal/job/jobsrv"
)

type fakeJobRepo struct {
	lastList job.ListJobsRequest
}

func (f *fakeJobRepo) CreateWithSkills(context.Context, *job.Job, []kernel.SkillID) error {
	return nil
}
func (f *fakeJobRepo) UpdateWithSkills(context.Context, kernel.JobID, *job.Job, []kernel.SkillID) error {
	return nil
}
func (f *fakeJobRepo) GetByID(context.Context, kernel.JobID) (*job.Job, error) {
	return nil, job.ErrJobNotFound()
}
func (f *fakeJobRepo) Delete(context.Context, kernel.JobID) error { return nil }
func (f *fakeJobRepo) SetFilled(context.Context, kernel.JobID, bool) error { return nil }
func (f *fakeJobRepo) List(_ context.Context, req job.ListJobsRequest) (*kernel.Paginated[job.JobResponse], error) {
	f.lastList = req
	return &kernel.Paginated[job.JobResponse]{
		Items: []job.JobResponse{},
		Page:  kernel.NewPage(req.Pagination, 0),
		Empty: true,
	}, nil
}
func (f *fakeJobRepo) GetResponseByID(context.Context, kernel.JobID, *kernel.UserID) (*job.JobResponse, error) {
	return nil, job.ErrJobNotFound()
}

type fakeDepartmentRepo struct{}

func (fakeDepartmentRepo) Create(context.Context, *catalog.Department) error { return nil }
func (fakeDepartmentRepo) Update(context.Context, kernel.DepartmentID, *catalog.Department) error {
	return nil
}
func (fakeDepartmentRepo) GetByID(context.Context, kernel.DepartmentID) (*catalog.Department, error) {
	return nil, catalog.ErrDepartmentNotFound()
}
func (fakeDepartmentRepo) Delete(context.Context, kernel.DepartmentID) error { return nil }
func (fakeDepartmentRepo) List(context.Context) ([]catalog.DepartmentResponse, error) {
	return nil, nil
}
func (fakeDepartmentRepo) ExistsByName(context.Context, string) (bool, error) { return false, nil }
func (fakeDepartmentRepo) CountJobs(context.Context, kernel.DepartmentID) (int64, error) {
	return 0, nil
}
func (fakeDepartmentRepo) CountWorkers(context.Context, kernel.DepartmentID) (int64, error) {
	return 0, nil
}

type fakeSkillRepo struct{}

func (fakeSkillRepo) Create(context.Context, *catalog.Skill) error { return nil }
func (fakeSkillRepo) Update(context.Context, kernel.SkillID, *catalog.Skill) error { return nil }
func (fakeSkillRepo) GetByID(context.Context, kernel.SkillID) (*catalog.Skill, error) {
	return nil, catalog.ErrSkillNotFound()
}
func (fakeSkillRepo) Delete(context.Context, kernel.SkillID) error { return nil }
func (fakeSkillRepo) List(context.Context) ([]catalog.Skill, error) { return nil, nil }
func (fakeSkillRepo) ExistsByName(context.Context, string) (bool, error) { return false, nil }
func (fakeSkillRepo) CountExisting(context.Context, []kernel.SkillID) (int64, error) {
	return 0, nil
}

func newTestApp() (*fiber.App, *fakeJobRepo) {
	repo := &fakeJobRepo{}
	service := jobsrv.NewJobService(repo, fakeDepartmentRepo{}, fakeSkillRepo{})
	handlers := NewHandlers(service, nil)

	app := fiber.New()
	app.Get("/api/admin/jobs", handlers.AdminListJobs)
	return app, repo
}

func TestAdminListJobsParsesFilters(t *testing.T) {
	app, repo := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/admin/jobs?isFilled=true&companyId=5", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	if repo.lastList.IsFilled == nil || !*repo.lastList.IsFilled {
		t.Error("isFilled filter not forwarded")
	}
	if repo.lastList.CompanyID == nil || repo.lastList.CompanyID.Int64() != 5 {
		t.Error("companyId filter not forwarded")
	}
}

func TestAdminListJobsNoFilters(t *testing.T) {
	app, repo := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/admin/jobs", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	if repo.lastList.IsFilled != nil {
		t.Error("isFilled must stay unset when the query omits it")
	}
	if repo.lastList.CompanyID != nil {
		t.Error("companyId must stay unset when the query omits it")
	}
}
