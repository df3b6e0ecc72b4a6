package job

import (
	"context"

	"github.com/openhire/jobportal/pkg/kernel"
)

// Repository defines persistence operations for jobs. Writes that touch the
// posting and its skill junction rows happen in a single transaction.
type Repository interface {
	// CreateWithSkills inserts the posting and its skill rows atomically
	CreateWithSkills(ctx context.Context, job *Job, skillIDs []kernel.SkillID) error
	// UpdateWithSkills updates the posting and replaces its skill rows atomically
	UpdateWithSkills(ctx context.Context, id kernel.JobID, job *Job, skillIDs []kernel.SkillID) error
	GetByID(ctx context.Context, id kernel.JobID) (*Job, error)
	Delete(ctx context.Context, id kernel.JobID) error
	SetFilled(ctx context.Context, id kernel.JobID, filled bool) error
	List(ctx context.Context, req ListJobsRequest) (*kernel.Paginated[JobResponse], error)
	// GetResponseByID loads one posting with joined names, skills and the
	// viewer's favorite/application flags
	GetResponseByID(ctx context.Context, id kernel.JobID, viewerID *kernel.UserID) (*JobResponse, error)
}
