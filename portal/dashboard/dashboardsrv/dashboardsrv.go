package dashboardsrv

import (
	"context"

	"github.com/openhire/jobportal/pkg/errx"
	"github.com/openhire/jobportal/portal/dashboard"
)

// DashboardService assembles the admin statistics snapshot
type DashboardService struct {
	repo dashboard.Repository
}

// NewDashboardService creates a new instance of the dashboard service
func NewDashboardService(repo dashboard.Repository) *DashboardService {
	return &DashboardService{repo: repo}
}

// GetStats collects all platform-wide counts into a single snapshot
func (s *DashboardService) GetStats(ctx context.Context) (*dashboard.StatsResponse, error) {
	roles, err := s.repo.CountUsersByRole(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count users", errx.TypeInternal)
	}

	companies, err := s.repo.CountCompanies(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count companies", errx.TypeInternal)
	}

	totalJobs, openJobs, filledJobs, err := s.repo.CountJobs(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count jobs", errx.TypeInternal)
	}

	statuses, err := s.repo.CountApplicationsByStatus(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count applications", errx.TypeInternal)
	}

	bySector, err := s.repo.CompaniesBySector(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to group companies by sector", errx.TypeInternal)
	}

	byDepartment, err := s.repo.JobsByDepartment(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to group jobs by department", errx.TypeInternal)
	}

	return &dashboard.StatsResponse{
		TotalUsers:           roles.Admins + roles.Employers + roles.JobSeekers,
		UsersByRole:          *roles,
		TotalCompanies:       companies,
		TotalJobs:            totalJobs,
		OpenJobs:             openJobs,
		FilledJobs:           filledJobs,
		TotalApplications:    statuses.Pending + statuses.Accepted + statuses.Rejected,
		ApplicationsByStatus: *statuses,
		CompaniesBySector:    bySector,
		JobsByDepartment:     byDepartment,
	}, nil
}
