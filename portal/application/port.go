package application

import (
	"context"

	"github.com/openhire/jobportal/pkg/kernel"
)

// Repository defines persistence operations for applications
type Repository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id kernel.ApplicationID) (*Application, error)
	// GetDetailByID loads one application joined with applicant, job and company
	GetDetailByID(ctx context.Context, id kernel.ApplicationID) (*ApplicationResponse, error)
	Delete(ctx context.Context, id kernel.ApplicationID) error
	ExistsByUserAndJob(ctx context.Context, userID kernel.UserID, jobID kernel.JobID) (bool, error)
	List(ctx context.Context, req ListApplicationsRequest) (*kernel.Paginated[ApplicationResponse], error)
	UpdateStatus(ctx context.Context, id kernel.ApplicationID, status Status) error
}
