package jobsrv

import (
	"context"
	"testing"

	"github.com/openhire/jobportal/pkg/errx"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/access"
	"github.com/openhire/jobportal/portal/catalog"
	"github.com/openhire/jobportal/portal/job"
	"github.com/openhire/jobportal/portal/user"
)

type fakeJobRepo struct {
	jobs       map[kernel.JobID]*job.Job
	nextID     int64
	lastSkills []kernel.SkillID
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[kernel.JobID]*job.Job), nextID: 1}
}

func (f *fakeJobRepo) CreateWithSkills(_ context.Context, j *job.Job, skillIDs []kernel.SkillID) error {
	j.ID = kernel.NewJobID(f.nextID)
	f.nextID++
	f.jobs[j.ID] = j
	f.lastSkills = skillIDs
	return nil
}

func (f *fakeJobRepo) UpdateWithSkills(_ context.Context, id kernel.JobID, j *job.Job, skillIDs []kernel.SkillID) error {
	if _, ok := f.jobs[id]; !ok {
		return job.ErrJobNotFound()
	}
	f.jobs[id] = j
	f.lastSkills = skillIDs
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id kernel.JobID) (*job.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, job.ErrJobNotFound()
	}
	return j, nil
}

func (f *fakeJobRepo) Delete(_ context.Context, id kernel.JobID) error {
	if _, ok := f.jobs[id]; !ok {
		return job.ErrJobNotFound()
	}
	delete(f.jobs, id)
	return nil
}

func (f *fakeJobRepo) SetFilled(_ context.Context, id kernel.JobID, filled bool) error {
	j, ok := f.jobs[id]
	if !ok {
		return job.ErrJobNotFound()
	}
	j.IsFilled = filled
	return nil
}

func (f *fakeJobRepo) List(_ context.Context, _ job.ListJobsRequest) (*kernel.Paginated[job.JobResponse], error) {
	return &kernel.Paginated[job.JobResponse]{Empty: true}, nil
}

func (f *fakeJobRepo) GetResponseByID(_ context.Context, id kernel.JobID, _ *kernel.UserID) (*job.JobResponse, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, job.ErrJobNotFound()
	}
	return &job.JobResponse{ID: j.ID, Title: j.Title, CompanyID: j.CompanyID, CreatedBy: j.CreatedBy}, nil
}

type fakeDepartmentRepo struct {
	departments map[kernel.DepartmentID]*catalog.Department
}

func (f *fakeDepartmentRepo) Create(context.Context, *catalog.Department) error { return nil }
func (f *fakeDepartmentRepo) Update(context.Context, kernel.DepartmentID, *catalog.Department) error {
	return nil
}
func (f *fakeDepartmentRepo) GetByID(_ context.Context, id kernel.DepartmentID) (*catalog.Department, error) {
	d, ok := f.departments[id]
	if !ok {
		return nil, catalog.ErrDepartmentNotFound()
	}
	return d, nil
}
func (f *fakeDepartmentRepo) Delete(context.Context, kernel.DepartmentID) error { return nil }
func (f *fakeDepartmentRepo) List(context.Context) ([]catalog.DepartmentResponse, error) {
	return nil, nil
}
func (f *fakeDepartmentRepo) ExistsByName(context.Context, string) (bool, error) { return false, nil }
func (f *fakeDepartmentRepo) CountJobs(context.Context, kernel.DepartmentID) (int64, error) {
	return 0, nil
}
func (f *fakeDepartmentRepo) CountWorkers(context.Context, kernel.DepartmentID) (int64, error) {
	return 0, nil
}

type fakeSkillRepo struct {
	existing map[kernel.SkillID]bool
}

func (f *fakeSkillRepo) Create(context.Context, *catalog.Skill) error { return nil }
func (f *fakeSkillRepo) Update(context.Context, kernel.SkillID, *catalog.Skill) error { return nil }
func (f *fakeSkillRepo) GetByID(context.Context, kernel.SkillID) (*catalog.Skill, error) {
	return nil, catalog.ErrSkillNotFound()
}
func (f *fakeSkillRepo) Delete(context.Context, kernel.SkillID) error { return nil }
func (f *fakeSkillRepo) List(context.Context) ([]catalog.Skill, error) { return nil, nil }
func (f *fakeSkillRepo) ExistsByName(context.Context, string) (bool, error) { return false, nil }
func (f *fakeSkillRepo) CountExisting(_ context.Context, ids []kernel.SkillID) (int64, error) {
	var count int64
	for _, id := range ids {
		if f.existing[id] {
			count++
		}
	}
	return count, nil
}

func employerScope(userID, companyID int64) access.Scope {
	c := kernel.NewCompanyID(companyID)
	return access.Scope{UserID: kernel.NewUserID(userID), Role: user.RoleEmployer, CompanyID: &c}
}

func newTestService() (*JobService, *fakeJobRepo, *fakeSkillRepo) {
	jobRepo := newFakeJobRepo()
	departmentRepo := &fakeDepartmentRepo{departments: map[kernel.DepartmentID]*catalog.Department{
		kernel.NewDepartmentID(1): {ID: kernel.NewDepartmentID(1), Name: "Engineering"},
	}}
	skillRepo := &fakeSkillRepo{existing: map[kernel.SkillID]bool{
		kernel.NewSkillID(1): true,
		kernel.NewSkillID(2): true,
	}}
	return NewJobService(jobRepo, departmentRepo, skillRepo), jobRepo, skillRepo
}

func validCreateRequest() job.CreateJobRequest {
	return job.CreateJobRequest{
		Title:        "Backend Engineer",
		DepartmentID: kernel.NewDepartmentID(1),
		SkillIDs:     []kernel.SkillID{kernel.NewSkillID(1), kernel.NewSkillID(2)},
	}
}

func TestCreateJob(t *testing.T) {
	svc, jobRepo, _ := newTestService()

	resp, err := svc.CreateJob(context.Background(), employerScope(1, 5), validCreateRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Title != "Backend Engineer" {
		t.Errorf("title = %q", resp.Title)
	}
	if len(jobRepo.lastSkills) != 2 {
		t.Errorf("stored %d skills, want 2", len(jobRepo.lastSkills))
	}

	stored := jobRepo.jobs[resp.ID]
	if stored.CompanyID != kernel.NewCompanyID(5) {
		t.Errorf("company = %v, want the caller's company", stored.CompanyID)
	}
	if stored.CreatedBy != kernel.NewUserID(1) {
		t.Errorf("created by = %v, want the caller", stored.CreatedBy)
	}
}

func TestCreateJobRequiresCompany(t *testing.T) {
	svc, _, _ := newTestService()

	scope := access.Scope{UserID: kernel.NewUserID(1), Role: user.RoleEmployer}
	_, err := svc.CreateJob(context.Background(), scope, validCreateRequest())
	if !errx.IsCode(err, access.CodeNoCompanyAssociation) {
		t.Fatalf("error = %v, want %s", err, access.CodeNoCompanyAssociation)
	}
}

func TestCreateJobRejectsEmptyTitle(t *testing.T) {
	svc, _, _ := newTestService()

	req := validCreateRequest()
	req.Title = "   "
	_, err := svc.CreateJob(context.Background(), employerScope(1, 5), req)
	if !errx.IsCode(err, job.CodeInvalidJob) {
		t.Fatalf("error = %v, want %s", err, job.CodeInvalidJob)
	}
}

func TestCreateJobRejectsInvertedSalaryRange(t *testing.T) {
	svc, _, _ := newTestService()

	low, high := 90000.0, 60000.0
	req := validCreateRequest()
	req.SalaryMin = &low
	req.SalaryMax = &high
	_, err := svc.CreateJob(context.Background(), employerScope(1, 5), req)
	if !errx.IsCode(err, job.CodeInvalidSalaryRange) {
		t.Fatalf("error = %v, want %s", err, job.CodeInvalidSalaryRange)
	}
}

func TestCreateJobRejectsUnknownDepartment(t *testing.T) {
	svc, _, _ := newTestService()

	req := validCreateRequest()
	req.DepartmentID = kernel.NewDepartmentID(999)
	_, err := svc.CreateJob(context.Background(), employerScope(1, 5), req)
	if !errx.IsCode(err, catalog.CodeDepartmentNotFound) {
		t.Fatalf("error = %v, want %s", err, catalog.CodeDepartmentNotFound)
	}
}

func TestCreateJobRejectsDuplicateSkills(t *testing.T) {
	svc, jobRepo, _ := newTestService()

	req := validCreateRequest()
	req.SkillIDs = []kernel.SkillID{kernel.NewSkillID(1), kernel.NewSkillID(1)}
	_, err := svc.CreateJob(context.Background(), employerScope(1, 5), req)
	if !errx.IsCode(err, job.CodeInvalidSkillSet) {
		t.Fatalf("error = %v, want %s", err, job.CodeInvalidSkillSet)
	}
	if len(jobRepo.jobs) != 0 {
		t.Error("no posting may be written when the skill set is rejected")
	}
}

func TestCreateJobRejectsUnknownSkills(t *testing.T) {
	svc, jobRepo, _ := newTestService()

	req := validCreateRequest()
	req.SkillIDs = []kernel.SkillID{kernel.NewSkillID(1), kernel.NewSkillID(777)}
	_, err := svc.CreateJob(context.Background(), employerScope(1, 5), req)
	if !errx.IsCode(err, job.CodeInvalidSkillSet) {
		t.Fatalf("error = %v, want %s", err, job.CodeInvalidSkillSet)
	}
	if len(jobRepo.jobs) != 0 {
		t.Error("no posting may be written when the skill set is rejected")
	}
}

func TestCreateJobWithoutSkills(t *testing.T) {
	svc, _, _ := newTestService()

	req := validCreateRequest()
	req.SkillIDs = nil
	if _, err := svc.CreateJob(context.Background(), employerScope(1, 5), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateJobOwnership(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	resp, err := svc.CreateJob(ctx, employerScope(1, 5), validCreateRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Another employer's posting resolves as absent, not as forbidden
	req := job.UpdateJobRequest{Title: "Hijacked", DepartmentID: kernel.NewDepartmentID(1)}
	_, err = svc.UpdateJob(ctx, employerScope(2, 5), resp.ID, req)
	if !errx.IsCode(err, job.CodeJobNotFound) {
		t.Fatalf("error = %v, want %s", err, job.CodeJobNotFound)
	}

	// The creator can
	if _, err := svc.UpdateJob(ctx, employerScope(1, 5), resp.ID, req); err != nil {
		t.Fatalf("owner update failed: %v", err)
	}

	// So can an admin
	req.Title = "Senior Backend Engineer"
	adminScope := access.Scope{UserID: kernel.NewUserID(99), Role: user.RoleAdmin}
	if _, err := svc.UpdateJob(ctx, adminScope, resp.ID, req); err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
}

func TestDeleteJobOwnership(t *testing.T) {
	svc, jobRepo, _ := newTestService()
	ctx := context.Background()

	resp, err := svc.CreateJob(ctx, employerScope(1, 5), validCreateRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	err = svc.DeleteJob(ctx, employerScope(2, 5), resp.ID)
	if !errx.IsCode(err, job.CodeJobNotFound) {
		t.Fatalf("error = %v, want %s", err, job.CodeJobNotFound)
	}

	if err := svc.DeleteJob(ctx, employerScope(1, 5), resp.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if len(jobRepo.jobs) != 0 {
		t.Error("posting should be deleted")
	}
}

func TestToggleFillStatus(t *testing.T) {
	svc, jobRepo, _ := newTestService()
	ctx := context.Background()

	resp, err := svc.CreateJob(ctx, employerScope(1, 5), validCreateRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	filled, err := svc.ToggleFillStatus(ctx, employerScope(1, 5), resp.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !filled || !jobRepo.jobs[resp.ID].IsFilled {
		t.Error("first toggle should mark the posting filled")
	}

	filled, err = svc.ToggleFillStatus(ctx, employerScope(1, 5), resp.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if filled {
		t.Error("second toggle should reopen the posting")
	}
}

func TestValidateSkillSet(t *testing.T) {
	if err := job.ValidateSkillSet(nil); err != nil {
		t.Errorf("empty set should pass: %v", err)
	}
	if err := job.ValidateSkillSet([]kernel.SkillID{kernel.NewSkillID(0)}); err == nil {
		t.Error("zero id should fail")
	}
	if err := job.ValidateSkillSet([]kernel.SkillID{kernel.NewSkillID(3), kernel.NewSkillID(3)}); err == nil {
		t.Error("duplicate ids should fail")
	}
}
