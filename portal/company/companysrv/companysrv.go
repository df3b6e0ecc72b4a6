package companysrv

import (
	"context"
	"strings"

	"github.com/openhire/jobportal/pkg/errx"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/catalog"
	"github.com/openhire/jobportal/portal/company"
)

// CompanyService provides business operations for companies and their workers
type CompanyService struct {
	companyRepo    company.Repository
	workerRepo     company.WorkerRepository
	sectorRepo     catalog.SectorRepository
	departmentRepo catalog.DepartmentRepository
}

// NewCompanyService creates a new instance of the company service
func NewCompanyService(
	companyRepo company.Repository,
	workerRepo company.WorkerRepository,
	sectorRepo catalog.SectorRepository,
	departmentRepo catalog.DepartmentRepository,
) *CompanyService {
	return &CompanyService{
		companyRepo:    companyRepo,
		workerRepo:     workerRepo,
		sectorRepo:     sectorRepo,
		departmentRepo: departmentRepo,
	}
}

// CreateCompany creates a new company under an existing sector
func (s *CompanyService) CreateCompany(ctx context.Context, req company.CreateCompanyRequest) (*company.Company, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, company.ErrInvalidCompany()
	}

	if _, err := s.sectorRepo.GetByID(ctx, req.SectorID); err != nil {
		return nil, catalog.ErrSectorNotFound().WithDetail("sector_id", req.SectorID.String())
	}

	newCompany := &company.Company{
		SectorID:    req.SectorID,
		Name:        name,
		Description: req.Description,
		Location:    req.Location,
	}

	if err := s.companyRepo.Create(ctx, newCompany); err != nil {
		return nil, errx.Wrap(err, "failed to create company", errx.TypeInternal)
	}

	return newCompany, nil
}

// UpdateCompany updates an existing company
func (s *CompanyService) UpdateCompany(ctx context.Context, id kernel.CompanyID, req company.UpdateCompanyRequest) (*company.CompanyResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, company.ErrInvalidCompany()
	}

	existing, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, company.ErrCompanyNotFound().WithDetail("company_id", id.String())
	}

	if _, err := s.sectorRepo.GetByID(ctx, req.SectorID); err != nil {
		return nil, catalog.ErrSectorNotFound().WithDetail("sector_id", req.SectorID.String())
	}

	existing.Name = name
	existing.Description = req.Description
	existing.Location = req.Location
	existing.SectorID = req.SectorID

	if err := s.companyRepo.Update(ctx, id, existing); err != nil {
		return nil, errx.Wrap(err, "failed to update company", errx.TypeInternal)
	}

	return s.companyRepo.GetResponseByID(ctx, id)
}

// GetCompany retrieves a company with its sector name and usage counts
func (s *CompanyService) GetCompany(ctx context.Context, id kernel.CompanyID) (*company.CompanyResponse, error) {
	resp, err := s.companyRepo.GetResponseByID(ctx, id)
	if err != nil {
		return nil, company.ErrCompanyNotFound().WithDetail("company_id", id.String())
	}
	return resp, nil
}

// ListCompanies retrieves all companies with their sector names and usage counts
func (s *CompanyService) ListCompanies(ctx context.Context) ([]company.CompanyResponse, error) {
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list companies", errx.TypeInternal)
	}
	return companies, nil
}

// DeleteCompany deletes a company. Companies that still have employees or job
// postings are protected from deletion.
func (s *CompanyService) DeleteCompany(ctx context.Context, id kernel.CompanyID) error {
	if _, err := s.companyRepo.GetByID(ctx, id); err != nil {
		return company.ErrCompanyNotFound().WithDetail("company_id", id.String())
	}

	employees, err := s.companyRepo.CountEmployees(ctx, id)
	if err != nil {
		return errx.Wrap(err, "failed to count company employees", errx.TypeInternal)
	}

	jobs, err := s.companyRepo.CountJobs(ctx, id)
	if err != nil {
		return errx.Wrap(err, "failed to count company jobs", errx.TypeInternal)
	}

	if employees > 0 || jobs > 0 {
		return company.ErrHasDependents().
			WithDetail("company_id", id.String()).
			WithDetail("employee_count", employees).
			WithDetail("job_count", jobs)
	}

	return s.companyRepo.Delete(ctx, id)
}

// AssignWorker assigns a user to a department within a company
func (s *CompanyService) AssignWorker(ctx context.Context, companyID kernel.CompanyID, req company.AssignWorkerRequest) (*company.Worker, error) {
	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, company.ErrCompanyNotFound().WithDetail("company_id", companyID.String())
	}

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return nil, catalog.ErrDepartmentNotFound().WithDetail("department_id", req.DepartmentID.String())
	}

	worker := &company.Worker{
		CompanyID:    companyID,
		UserID:       req.UserID,
		DepartmentID: req.DepartmentID,
	}

	if err := s.workerRepo.Add(ctx, worker); err != nil {
		return nil, err
	}

	return worker, nil
}

// RemoveWorker removes a worker assignment
func (s *CompanyService) RemoveWorker(ctx context.Context, id int64) error {
	return s.workerRepo.Remove(ctx, id)
}

// ListWorkers retrieves all worker assignments of a company
func (s *CompanyService) ListWorkers(ctx context.Context, companyID kernel.CompanyID) ([]company.WorkerResponse, error) {
	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, company.ErrCompanyNotFound().WithDetail("company_id", companyID.String())
	}

	workers, err := s.workerRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list company workers", errx.TypeInternal)
	}

	return workers, nil
}
