package dashboard

import "context"

// Repository aggregates platform-wide counts for the admin dashboard
type Repository interface {
	// CountUsersByRole returns the user base broken down by role
	CountUsersByRole(ctx context.Context) (*RoleCounts, error)

	// CountCompanies returns the total number of companies
	CountCompanies(ctx context.Context) (int64, error)

	// CountJobs returns total, open and filled posting counts
	CountJobs(ctx context.Context) (total, open, filled int64, err error)

	// CountApplicationsByStatus returns applications broken down by status
	CountApplicationsByStatus(ctx context.Context) (*StatusCounts, error)

	// CompaniesBySector returns company counts grouped by sector name
	CompaniesBySector(ctx context.Context) ([]GroupCount, error)

	// JobsByDepartment returns posting counts grouped by department name
	JobsByDepartment(ctx context.Context) ([]GroupCount, error)
}
