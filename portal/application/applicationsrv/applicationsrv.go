package applicationsrv

import (
	"context"
	"time"

	"github.com/openhire/jobportal/pkg/errx"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/access"
	"github.com/openhire/jobportal/portal/application"
	"github.com/openhire/jobportal/portal/cv"
	"github.com/openhire/jobportal/portal/job"
)

// ApplicationService provides business operations for job applications
type ApplicationService struct {
	applicationRepo application.Repository
	jobRepo         job.Repository
	cvRepo          cv.Repository
}

// NewApplicationService creates a new instance of the application service
func NewApplicationService(
	applicationRepo application.Repository,
	jobRepo job.Repository,
	cvRepo cv.Repository,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		cvRepo:          cvRepo,
	}
}

// ViewApplications lists applications the caller is allowed to see: admins
// see everything, employers see their company's postings, seekers see their
// own applications.
func (s *ApplicationService) ViewApplications(ctx context.Context, scope access.Scope, status *application.Status, pagination kernel.PaginationOptions) (*kernel.Paginated[application.ApplicationResponse], error) {
	req := application.ListApplicationsRequest{
		Status:     status,
		Pagination: pagination,
	}

	switch {
	case scope.IsAdmin():
		// unrestricted
	case scope.IsEmployer():
		companyID, err := scope.RequireCompany()
		if err != nil {
			return nil, err
		}
		req.CompanyID = &companyID
	default:
		userID := scope.UserID
		req.UserID = &userID
	}

	apps, err := s.applicationRepo.List(ctx, req)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications", errx.TypeInternal)
	}

	return apps, nil
}

// ApplyToJob creates a pending application for the caller. A user can hold at
// most one application per job.
func (s *ApplicationService) ApplyToJob(ctx context.Context, scope access.Scope, jobID kernel.JobID) (*application.Application, error) {
	if _, err := s.jobRepo.GetByID(ctx, jobID); err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	exists, err := s.applicationRepo.ExistsByUserAndJob(ctx, scope.UserID, jobID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check existing application", errx.TypeInternal)
	}
	if exists {
		return nil, application.ErrAlreadyApplied().
			WithDetail("user_id", scope.UserID.String()).
			WithDetail("job_id", jobID.String())
	}

	app := &application.Application{
		UserID:    scope.UserID,
		JobID:     jobID,
		Status:    application.StatusPending,
		CreatedAt: time.Now(),
	}

	// The unique (user, job) index backstops the existence check under
	// concurrent submissions
	if err := s.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	return app, nil
}

// UpdateApplicationStatus decides a pending application. Only applications to
// the employer's own postings can be decided, and a decision is final.
func (s *ApplicationService) UpdateApplicationStatus(ctx context.Context, scope access.Scope, id kernel.ApplicationID, newStatus application.Status) (*application.ApplicationResponse, error) {
	if !newStatus.IsValid() {
		return nil, application.ErrInvalidStatus().WithDetail("status", string(newStatus))
	}

	detail, err := s.applicationRepo.GetDetailByID(ctx, id)
	if err != nil {
		return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}

	if !scope.CoversCompany(detail.CompanyID) {
		return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}

	if !detail.Status.CanTransitionTo(newStatus) {
		if detail.Status.IsTerminal() {
			return nil, application.ErrStatusLocked().
				WithDetail("application_id", id.String()).
				WithDetail("status", string(detail.Status))
		}
		return nil, application.ErrInvalidStatus().
			WithDetail("from", string(detail.Status)).
			WithDetail("to", string(newStatus))
	}

	if err := s.applicationRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, errx.Wrap(err, "failed to update application status", errx.TypeInternal)
	}

	detail.Status = newStatus
	return detail, nil
}

// RemoveApplication withdraws the caller's own pending application. Decided
// applications stay on record.
func (s *ApplicationService) RemoveApplication(ctx context.Context, scope access.Scope, id kernel.ApplicationID) error {
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}

	if !scope.OwnsRow(app.UserID) {
		return application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}

	if app.Status != application.StatusPending {
		return application.ErrNotPending().
			WithDetail("application_id", id.String()).
			WithDetail("status", string(app.Status))
	}

	return s.applicationRepo.Delete(ctx, id)
}

// GetApplicantCV returns the latest CV of an applicant to one of the
// employer's postings
func (s *ApplicationService) GetApplicantCV(ctx context.Context, scope access.Scope, id kernel.ApplicationID) (*cv.CVResponse, error) {
	detail, err := s.applicationRepo.GetDetailByID(ctx, id)
	if err != nil {
		return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}

	if !scope.CoversCompany(detail.CompanyID) {
		return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}

	latest, err := s.cvRepo.GetLatestResponseByUser(ctx, detail.UserID)
	if err != nil {
		return nil, cv.ErrCVNotFound().WithDetail("user_id", detail.UserID.String())
	}

	return latest, nil
}
