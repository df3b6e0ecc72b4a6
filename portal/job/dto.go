package job

import (
	"time"

	"github.com/openhire/jobportal/pkg/kernel"
)

// CreateJobRequest is the payload for posting a job. The company is taken
// from the caller, never from the payload.
type CreateJobRequest struct {
	Title        string              `json:"title"`
	Description  *string             `json:"description"`
	Location     *string             `json:"location"`
	SalaryMin    *float64            `json:"salaryMin"`
	SalaryMax    *float64            `json:"salaryMax"`
	DepartmentID kernel.DepartmentID `json:"departmentId"`
	SkillIDs     []kernel.SkillID    `json:"skillIds"`
}

// UpdateJobRequest is the payload for updating a job posting. The skill list
// replaces the stored one entirely.
type UpdateJobRequest struct {
	Title        string              `json:"title"`
	Description  *string             `json:"description"`
	Location     *string             `json:"location"`
	SalaryMin    *float64            `json:"salaryMin"`
	SalaryMax    *float64            `json:"salaryMax"`
	DepartmentID kernel.DepartmentID `json:"departmentId"`
	SkillIDs     []kernel.SkillID    `json:"skillIds"`
}

// ListJobsRequest describes job listing filters. ViewerID, when set, drives
// the per-row favorite and application flags.
type ListJobsRequest struct {
	Search     string                   `json:"search"`
	SectorID   *kernel.SectorID         `json:"sectorId"`
	CompanyID  *kernel.CompanyID        `json:"companyId"`
	IsFilled   *bool                    `json:"isFilled"`
	ViewerID   *kernel.UserID           `json:"-"`
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// JobResponse is a posting joined with its company, department and skills
type JobResponse struct {
	ID             kernel.JobID     `json:"id" db:"id"`
	Title          string           `json:"title" db:"title"`
	Description    *string          `json:"description,omitempty" db:"description"`
	Location       *string          `json:"location,omitempty" db:"location"`
	SalaryMin      *float64         `json:"salaryMin,omitempty" db:"salary_min"`
	SalaryMax      *float64         `json:"salaryMax,omitempty" db:"salary_max"`
	CompanyID      kernel.CompanyID `json:"companyId" db:"company_id"`
	CompanyName    string           `json:"companyName" db:"company_name"`
	DepartmentName string           `json:"departmentName" db:"department_name"`
	CreatedBy      kernel.UserID    `json:"createdBy" db:"created_by"`
	CreatedAt      time.Time        `json:"createdAt" db:"created_at"`
	Skills         []string         `json:"skills"`
	IsFavorited    bool             `json:"isFavorited" db:"is_favorited"`
	HasApplied     bool             `json:"hasApplied" db:"has_applied"`
	IsFilled       bool             `json:"isFilled" db:"is_filled"`
}
