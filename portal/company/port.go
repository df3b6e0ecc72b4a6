package company

import (
	"context"

	"github.com/openhire/jobportal/pkg/kernel"
)

// Repository defines persistence operations for companies
type Repository interface {
	Create(ctx context.Context, company *Company) error
	Update(ctx context.Context, id kernel.CompanyID, company *Company) error
	GetByID(ctx context.Context, id kernel.CompanyID) (*Company, error)
	Delete(ctx context.Context, id kernel.CompanyID) error
	List(ctx context.Context) ([]CompanyResponse, error)
	GetResponseByID(ctx context.Context, id kernel.CompanyID) (*CompanyResponse, error)
	CountEmployees(ctx context.Context, id kernel.CompanyID) (int64, error)
	CountJobs(ctx context.Context, id kernel.CompanyID) (int64, error)
}

// WorkerRepository defines persistence operations for company worker assignments
type WorkerRepository interface {
	Add(ctx context.Context, worker *Worker) error
	Remove(ctx context.Context, id int64) error
	ListByCompany(ctx context.Context, companyID kernel.CompanyID) ([]WorkerResponse, error)
}
