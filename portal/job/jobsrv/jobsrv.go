package jobsrv

import (
	"context"
	"strings"
	"time"

	"github.com/openhire/jobportal/pkg/errx"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/access"
	"github.com/openhire/jobportal/portal/catalog"
	"github.com/openhire/jobportal/portal/job"
)

// JobService provides business operations for job postings
type JobService struct {
	jobRepo        job.Repository
	departmentRepo catalog.DepartmentRepository
	skillRepo      catalog.SkillRepository
}

// NewJobService creates a new instance of the job service
func NewJobService(
	jobRepo job.Repository,
	departmentRepo catalog.DepartmentRepository,
	skillRepo catalog.SkillRepository,
) *JobService {
	return &JobService{
		jobRepo:        jobRepo,
		departmentRepo: departmentRepo,
		skillRepo:      skillRepo,
	}
}

// CreateJob posts a new job for the caller's company. The posting and its
// skill rows are stored atomically: either the job lands with its full skill
// set or nothing is written.
func (s *JobService) CreateJob(ctx context.Context, scope access.Scope, req job.CreateJobRequest) (*job.JobResponse, error) {
	companyID, err := scope.RequireCompany()
	if err != nil {
		return nil, err
	}

	if err := s.validateJobFields(req.Title, req.SalaryMin, req.SalaryMax); err != nil {
		return nil, err
	}

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return nil, catalog.ErrDepartmentNotFound().WithDetail("department_id", req.DepartmentID.String())
	}

	if err := s.validateSkillSet(ctx, req.SkillIDs); err != nil {
		return nil, err
	}

	newJob := &job.Job{
		CreatedBy:    scope.UserID,
		CompanyID:    companyID,
		DepartmentID: req.DepartmentID,
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		Location:     req.Location,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		CreatedAt:    time.Now(),
	}

	if err := s.jobRepo.CreateWithSkills(ctx, newJob, req.SkillIDs); err != nil {
		return nil, err
	}

	viewerID := scope.UserID
	return s.jobRepo.GetResponseByID(ctx, newJob.ID, &viewerID)
}

// UpdateJob updates a posting owned by the caller and replaces its skill set
func (s *JobService) UpdateJob(ctx context.Context, scope access.Scope, jobID kernel.JobID, req job.UpdateJobRequest) (*job.JobResponse, error) {
	existing, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	// Postings of other creators resolve as absent, matching the lookup
	// being scoped to created_by
	if !scope.OwnsRow(existing.CreatedBy) {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	if err := s.validateJobFields(req.Title, req.SalaryMin, req.SalaryMax); err != nil {
		return nil, err
	}

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return nil, catalog.ErrDepartmentNotFound().WithDetail("department_id", req.DepartmentID.String())
	}

	if err := s.validateSkillSet(ctx, req.SkillIDs); err != nil {
		return nil, err
	}

	existing.Title = strings.TrimSpace(req.Title)
	existing.Description = req.Description
	existing.Location = req.Location
	existing.SalaryMin = req.SalaryMin
	existing.SalaryMax = req.SalaryMax
	existing.DepartmentID = req.DepartmentID

	if err := s.jobRepo.UpdateWithSkills(ctx, jobID, existing, req.SkillIDs); err != nil {
		return nil, err
	}

	viewerID := scope.UserID
	return s.jobRepo.GetResponseByID(ctx, jobID, &viewerID)
}

// DeleteJob deletes a posting owned by the caller. Applications, favorites
// and skill rows of the posting go with it.
func (s *JobService) DeleteJob(ctx context.Context, scope access.Scope, jobID kernel.JobID) error {
	existing, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	if !scope.OwnsRow(existing.CreatedBy) {
		return job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	return s.jobRepo.Delete(ctx, jobID)
}

// ToggleFillStatus flips a posting between open and filled and returns the
// new state
func (s *JobService) ToggleFillStatus(ctx context.Context, scope access.Scope, jobID kernel.JobID) (bool, error) {
	existing, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return false, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	if !scope.OwnsRow(existing.CreatedBy) {
		return false, job.ErrNotOwner().WithDetail("job_id", jobID.String())
	}

	filled := !existing.IsFilled
	if err := s.jobRepo.SetFilled(ctx, jobID, filled); err != nil {
		return false, err
	}

	return filled, nil
}

// GetJob retrieves a posting with the viewer's favorite and application flags
func (s *JobService) GetJob(ctx context.Context, jobID kernel.JobID, viewerID *kernel.UserID) (*job.JobResponse, error) {
	resp, err := s.jobRepo.GetResponseByID(ctx, jobID, viewerID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}
	return resp, nil
}

// ListJobs retrieves postings matching the given filters
func (s *JobService) ListJobs(ctx context.Context, req job.ListJobsRequest) (*kernel.Paginated[job.JobResponse], error) {
	jobs, err := s.jobRepo.List(ctx, req)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list jobs", errx.TypeInternal)
	}
	return jobs, nil
}

// ListCompanyJobs retrieves the postings of the caller's own company
func (s *JobService) ListCompanyJobs(ctx context.Context, scope access.Scope, pagination kernel.PaginationOptions) (*kernel.Paginated[job.JobResponse], error) {
	companyID, err := scope.RequireCompany()
	if err != nil {
		return nil, err
	}

	viewerID := scope.UserID
	return s.ListJobs(ctx, job.ListJobsRequest{
		CompanyID:  &companyID,
		ViewerID:   &viewerID,
		Pagination: pagination,
	})
}

// validateJobFields checks the title and the salary range
func (s *JobService) validateJobFields(title string, salaryMin, salaryMax *float64) error {
	if strings.TrimSpace(title) == "" {
		return job.ErrInvalidJob()
	}
	if salaryMin != nil && salaryMax != nil && *salaryMin > *salaryMax {
		return job.ErrInvalidSalaryRange().
			WithDetail("salary_min", *salaryMin).
			WithDetail("salary_max", *salaryMax)
	}
	return nil
}

// validateSkillSet rejects duplicate ids and ids with no stored skill before
// any row is written
func (s *JobService) validateSkillSet(ctx context.Context, ids []kernel.SkillID) error {
	if err := job.ValidateSkillSet(ids); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	count, err := s.skillRepo.CountExisting(ctx, ids)
	if err != nil {
		return errx.Wrap(err, "failed to verify skill set", errx.TypeInternal)
	}
	if count != int64(len(ids)) {
		return job.ErrInvalidSkillSet().
			WithDetail("requested", len(ids)).
			WithDetail("found", count)
	}

	return nil
}
