package catalog

import "github.com/openhire/jobportal/pkg/kernel"

// CreateSectorRequest is the payload for creating a sector
type CreateSectorRequest struct {
	Name string `json:"name"`
}

// UpdateSectorRequest is the payload for renaming a sector
type UpdateSectorRequest struct {
	Name string `json:"name"`
}

// SectorResponse is a sector together with its company usage count
type SectorResponse struct {
	ID           kernel.SectorID `json:"id" db:"id"`
	Name         string          `json:"name" db:"name"`
	CompanyCount int64           `json:"companyCount" db:"company_count"`
}

// CreateDepartmentRequest is the payload for creating a department
type CreateDepartmentRequest struct {
	Name string `json:"name"`
}

// UpdateDepartmentRequest is the payload for renaming a department
type UpdateDepartmentRequest struct {
	Name string `json:"name"`
}

// DepartmentResponse is a department together with its job usage count
type DepartmentResponse struct {
	ID       kernel.DepartmentID `json:"id" db:"id"`
	Name     string              `json:"name" db:"name"`
	JobCount int64               `json:"jobCount" db:"job_count"`
}

// CreateSkillRequest is the payload for creating a skill
type CreateSkillRequest struct {
	Name string `json:"name"`
}

// UpdateSkillRequest is the payload for renaming a skill
type UpdateSkillRequest struct {
	Name string `json:"name"`
}
