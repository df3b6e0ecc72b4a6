package favorite

import (
	"context"

	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/job"
)

// Repository defines persistence operations for favorites
type Repository interface {
	Add(ctx context.Context, fav *Favorite) error
	// RemoveByUserAndJob deletes the user's favorite for a job
	RemoveByUserAndJob(ctx context.Context, userID kernel.UserID, jobID kernel.JobID) error
	ExistsByUserAndJob(ctx context.Context, userID kernel.UserID, jobID kernel.JobID) (bool, error)
	// ListJobsByUser returns the saved jobs as full postings with the user's flags
	ListJobsByUser(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[job.JobResponse], error)
}
