package catalog

import (
	"context"

	"github.com/openhire/jobportal/pkg/kernel"
)

// SectorRepository defines persistence operations for sectors
type SectorRepository interface {
	Create(ctx context.Context, sector *Sector) error
	Update(ctx context.Context, id kernel.SectorID, sector *Sector) error
	GetByID(ctx context.Context, id kernel.SectorID) (*Sector, error)
	Delete(ctx context.Context, id kernel.SectorID) error
	List(ctx context.Context) ([]SectorResponse, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	CountCompanies(ctx context.Context, id kernel.SectorID) (int64, error)
}

// DepartmentRepository defines persistence operations for departments
type DepartmentRepository interface {
	Create(ctx context.Context, department *Department) error
	Update(ctx context.Context, id kernel.DepartmentID, department *Department) error
	GetByID(ctx context.Context, id kernel.DepartmentID) (*Department, error)
	Delete(ctx context.Context, id kernel.DepartmentID) error
	List(ctx context.Context) ([]DepartmentResponse, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	CountJobs(ctx context.Context, id kernel.DepartmentID) (int64, error)
	// CountWorkers counts employment records referencing the department
	CountWorkers(ctx context.Context, id kernel.DepartmentID) (int64, error)
}

// SkillRepository defines persistence operations for skills
type SkillRepository interface {
	Create(ctx context.Context, skill *Skill) error
	Update(ctx context.Context, id kernel.SkillID, skill *Skill) error
	GetByID(ctx context.Context, id kernel.SkillID) (*Skill, error)
	// Delete removes the skill together with its job and CV junction rows
	Delete(ctx context.Context, id kernel.SkillID) error
	List(ctx context.Context) ([]Skill, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	// CountExisting reports how many of the given ids reference a stored skill
	CountExisting(ctx context.Context, ids []kernel.SkillID) (int64, error)
}
