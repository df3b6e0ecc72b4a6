// Package job holds job postings and the skill sets attached to them.
package job

import (
	"time"

	"github.com/openhire/jobportal/pkg/kernel"
)

// Job is a posting created by an employer on behalf of their company
type Job struct {
	ID           kernel.JobID        `json:"id" db:"id"`
	CreatedBy    kernel.UserID       `json:"createdBy" db:"created_by"`
	CompanyID    kernel.CompanyID    `json:"companyId" db:"company_id"`
	DepartmentID kernel.DepartmentID `json:"departmentId" db:"department_id"`
	Title        string              `json:"title" db:"title"`
	Description  *string             `json:"description,omitempty" db:"description"`
	Location     *string             `json:"location,omitempty" db:"location"`
	SalaryMin    *float64            `json:"salaryMin,omitempty" db:"salary_min"`
	SalaryMax    *float64            `json:"salaryMax,omitempty" db:"salary_max"`
	IsFilled     bool                `json:"isFilled" db:"is_filled"`
	CreatedAt    time.Time           `json:"createdAt" db:"created_at"`
}

// ValidateSkillSet checks a requested skill id list for duplicates and zero
// ids. Existence of each id is checked against storage separately.
func ValidateSkillSet(ids []kernel.SkillID) error {
	seen := make(map[kernel.SkillID]struct{}, len(ids))
	for _, id := range ids {
		if id.IsZero() {
			return ErrInvalidSkillSet().WithDetail("skill_id", id.String())
		}
		if _, dup := seen[id]; dup {
			return ErrInvalidSkillSet().WithDetail("duplicate_skill_id", id.String())
		}
		seen[id] = struct{}{}
	}
	return nil
}
