// Package company holds employer organizations and their worker assignments.
package company

import "github.com/openhire/jobportal/pkg/kernel"

// Company is an employer organization classified under a sector
type Company struct {
	ID          kernel.CompanyID `json:"id" db:"id"`
	SectorID    kernel.SectorID  `json:"sectorId" db:"sector_id"`
	Name        string           `json:"name" db:"name"`
	Description *string          `json:"description,omitempty" db:"description"`
	Location    *string          `json:"location,omitempty" db:"location"`
}

// Worker is a user's departmental assignment inside a company
type Worker struct {
	ID           int64               `json:"id" db:"id"`
	CompanyID    kernel.CompanyID    `json:"companyId" db:"company_id"`
	UserID       kernel.UserID       `json:"userId" db:"user_id"`
	DepartmentID kernel.DepartmentID `json:"departmentId" db:"department_id"`
}
