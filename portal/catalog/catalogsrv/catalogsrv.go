package catalogsrv

import (
	"context"

	"github.com/openhire/jobportal/pkg/errx"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/catalog"
)

// CatalogService provides management operations for sectors, departments and skills
type CatalogService struct {
	sectorRepo     catalog.SectorRepository
	departmentRepo catalog.DepartmentRepository
	skillRepo      catalog.SkillRepository
}

// NewCatalogService creates a new instance of the catalog service
func NewCatalogService(
	sectorRepo catalog.SectorRepository,
	departmentRepo catalog.DepartmentRepository,
	skillRepo catalog.SkillRepository,
) *CatalogService {
	return &CatalogService{
		sectorRepo:     sectorRepo,
		departmentRepo: departmentRepo,
		skillRepo:      skillRepo,
	}
}

// ============================================================================
// Sectors
// ============================================================================

// CreateSector creates a new sector
func (s *CatalogService) CreateSector(ctx context.Context, req catalog.CreateSectorRequest) (*catalog.Sector, error) {
	name := catalog.NormalizeName(req.Name)
	if name == "" {
		return nil, catalog.ErrInvalidName()
	}

	exists, err := s.sectorRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check sector name", errx.TypeInternal)
	}
	if exists {
		return nil, catalog.ErrNameAlreadyExists().WithDetail("name", name)
	}

	sector := &catalog.Sector{Name: name}
	if err := s.sectorRepo.Create(ctx, sector); err != nil {
		return nil, err
	}

	return sector, nil
}

// UpdateSector renames an existing sector
func (s *CatalogService) UpdateSector(ctx context.Context, id kernel.SectorID, req catalog.UpdateSectorRequest) (*catalog.Sector, error) {
	name := catalog.NormalizeName(req.Name)
	if name == "" {
		return nil, catalog.ErrInvalidName()
	}

	sector, err := s.sectorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, catalog.ErrSectorNotFound().WithDetail("sector_id", id.String())
	}

	if sector.Name != name {
		exists, err := s.sectorRepo.ExistsByName(ctx, name)
		if err != nil {
			return nil, errx.Wrap(err, "failed to check sector name", errx.TypeInternal)
		}
		if exists {
			return nil, catalog.ErrNameAlreadyExists().WithDetail("name", name)
		}

		sector.Name = name
		if err := s.sectorRepo.Update(ctx, id, sector); err != nil {
			return nil, err
		}
	}

	return sector, nil
}

// GetSector retrieves a sector by ID
func (s *CatalogService) GetSector(ctx context.Context, id kernel.SectorID) (*catalog.Sector, error) {
	sector, err := s.sectorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, catalog.ErrSectorNotFound().WithDetail("sector_id", id.String())
	}
	return sector, nil
}

// ListSectors retrieves all sectors with their company counts
func (s *CatalogService) ListSectors(ctx context.Context) ([]catalog.SectorResponse, error) {
	sectors, err := s.sectorRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list sectors", errx.TypeInternal)
	}
	return sectors, nil
}

// DeleteSector deletes a sector. Sectors still referenced by companies are
// protected from deletion.
func (s *CatalogService) DeleteSector(ctx context.Context, id kernel.SectorID) error {
	if _, err := s.sectorRepo.GetByID(ctx, id); err != nil {
		return catalog.ErrSectorNotFound().WithDetail("sector_id", id.String())
	}

	companies, err := s.sectorRepo.CountCompanies(ctx, id)
	if err != nil {
		return errx.Wrap(err, "failed to count sector companies", errx.TypeInternal)
	}
	if companies > 0 {
		return catalog.ErrSectorHasCompanies().
			WithDetail("sector_id", id.String()).
			WithDetail("company_count", companies)
	}

	return s.sectorRepo.Delete(ctx, id)
}

// ============================================================================
// Departments
// ============================================================================

// CreateDepartment creates a new department
func (s *CatalogService) CreateDepartment(ctx context.Context, req catalog.CreateDepartmentRequest) (*catalog.Department, error) {
	name := catalog.NormalizeName(req.Name)
	if name == "" {
		return nil, catalog.ErrInvalidName()
	}

	exists, err := s.departmentRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check department name", errx.TypeInternal)
	}
	if exists {
		return nil, catalog.ErrNameAlreadyExists().WithDetail("name", name)
	}

	department := &catalog.Department{Name: name}
	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}

	return department, nil
}

// UpdateDepartment renames an existing department
func (s *CatalogService) UpdateDepartment(ctx context.Context, id kernel.DepartmentID, req catalog.UpdateDepartmentRequest) (*catalog.Department, error) {
	name := catalog.NormalizeName(req.Name)
	if name == "" {
		return nil, catalog.ErrInvalidName()
	}

	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, catalog.ErrDepartmentNotFound().WithDetail("department_id", id.String())
	}

	if department.Name != name {
		exists, err := s.departmentRepo.ExistsByName(ctx, name)
		if err != nil {
			return nil, errx.Wrap(err, "failed to check department name", errx.TypeInternal)
		}
		if exists {
			return nil, catalog.ErrNameAlreadyExists().WithDetail("name", name)
		}

		department.Name = name
		if err := s.departmentRepo.Update(ctx, id, department); err != nil {
			return nil, err
		}
	}

	return department, nil
}

// GetDepartment retrieves a department by ID
func (s *CatalogService) GetDepartment(ctx context.Context, id kernel.DepartmentID) (*catalog.Department, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, catalog.ErrDepartmentNotFound().WithDetail("department_id", id.String())
	}
	return department, nil
}

// ListDepartments retrieves all departments with their job counts
func (s *CatalogService) ListDepartments(ctx context.Context) ([]catalog.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list departments", errx.TypeInternal)
	}
	return departments, nil
}

// DeleteDepartment deletes a department. Departments still referenced by jobs
// or worker records are protected from deletion.
func (s *CatalogService) DeleteDepartment(ctx context.Context, id kernel.DepartmentID) error {
	if _, err := s.departmentRepo.GetByID(ctx, id); err != nil {
		return catalog.ErrDepartmentNotFound().WithDetail("department_id", id.String())
	}

	jobs, err := s.departmentRepo.CountJobs(ctx, id)
	if err != nil {
		return errx.Wrap(err, "failed to count department jobs", errx.TypeInternal)
	}
	if jobs > 0 {
		return catalog.ErrDepartmentHasJobs().
			WithDetail("department_id", id.String()).
			WithDetail("job_count", jobs)
	}

	workers, err := s.departmentRepo.CountWorkers(ctx, id)
	if err != nil {
		return errx.Wrap(err, "failed to count department workers", errx.TypeInternal)
	}
	if workers > 0 {
		return catalog.ErrDepartmentHasWorkers().
			WithDetail("department_id", id.String()).
			WithDetail("worker_count", workers)
	}

	return s.departmentRepo.Delete(ctx, id)
}

// ============================================================================
// Skills
// ============================================================================

// CreateSkill creates a new skill
func (s *CatalogService) CreateSkill(ctx context.Context, req catalog.CreateSkillRequest) (*catalog.Skill, error) {
	name := catalog.NormalizeName(req.Name)
	if name == "" {
		return nil, catalog.ErrInvalidName()
	}

	exists, err := s.skillRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check skill name", errx.TypeInternal)
	}
	if exists {
		return nil, catalog.ErrNameAlreadyExists().WithDetail("name", name)
	}

	skill := &catalog.Skill{Name: name}
	if err := s.skillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}

	return skill, nil
}

// UpdateSkill renames an existing skill
func (s *CatalogService) UpdateSkill(ctx context.Context, id kernel.SkillID, req catalog.UpdateSkillRequest) (*catalog.Skill, error) {
	name := catalog.NormalizeName(req.Name)
	if name == "" {
		return nil, catalog.ErrInvalidName()
	}

	skill, err := s.skillRepo.GetByID(ctx, id)
	if err != nil {
		return nil, catalog.ErrSkillNotFound().WithDetail("skill_id", id.String())
	}

	if skill.Name != name {
		exists, err := s.skillRepo.ExistsByName(ctx, name)
		if err != nil {
			return nil, errx.Wrap(err, "failed to check skill name", errx.TypeInternal)
		}
		if exists {
			return nil, catalog.ErrNameAlreadyExists().WithDetail("name", name)
		}

		skill.Name = name
		if err := s.skillRepo.Update(ctx, id, skill); err != nil {
			return nil, err
		}
	}

	return skill, nil
}

// GetSkill retrieves a skill by ID
func (s *CatalogService) GetSkill(ctx context.Context, id kernel.SkillID) (*catalog.Skill, error) {
	skill, err := s.skillRepo.GetByID(ctx, id)
	if err != nil {
		return nil, catalog.ErrSkillNotFound().WithDetail("skill_id", id.String())
	}
	return skill, nil
}

// ListSkills retrieves all skills
func (s *CatalogService) ListSkills(ctx context.Context) ([]catalog.Skill, error) {
	skills, err := s.skillRepo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list skills", errx.TypeInternal)
	}
	return skills, nil
}

// DeleteSkill deletes a skill. Job and CV references to it are removed along
// with the skill rather than blocking the delete.
func (s *CatalogService) DeleteSkill(ctx context.Context, id kernel.SkillID) error {
	if _, err := s.skillRepo.GetByID(ctx, id); err != nil {
		return catalog.ErrSkillNotFound().WithDetail("skill_id", id.String())
	}

	return s.skillRepo.Delete(ctx, id)
}
