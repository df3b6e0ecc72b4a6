package company

import "github.com/openhire/jobportal/pkg/kernel"

// CreateCompanyRequest is the payload for creating a company
type CreateCompanyRequest struct {
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Location    *string         `json:"location"`
	SectorID    kernel.SectorID `json:"sectorId"`
}

// UpdateCompanyRequest is the payload for updating a company
type UpdateCompanyRequest struct {
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Location    *string         `json:"location"`
	SectorID    kernel.SectorID `json:"sectorId"`
}

// CompanyResponse is a company together with its sector name and usage counts
type CompanyResponse struct {
	ID            kernel.CompanyID `json:"id" db:"id"`
	Name          string           `json:"name" db:"name"`
	Description   *string          `json:"description,omitempty" db:"description"`
	Location      *string          `json:"location,omitempty" db:"location"`
	SectorName    string           `json:"sectorName" db:"sector_name"`
	EmployeeCount int64            `json:"employeeCount" db:"employee_count"`
	JobCount      int64            `json:"jobCount" db:"job_count"`
}

// AssignWorkerRequest is the payload for assigning a user to a company department
type AssignWorkerRequest struct {
	UserID       kernel.UserID       `json:"userId"`
	DepartmentID kernel.DepartmentID `json:"departmentId"`
}

// WorkerResponse is a worker assignment joined with user and department names
type WorkerResponse struct {
	ID             int64               `json:"id" db:"id"`
	UserID         kernel.UserID       `json:"userId" db:"user_id"`
	Name           string              `json:"name" db:"name"`
	Surname        string              `json:"surname" db:"surname"`
	Email          string              `json:"email" db:"email"`
	DepartmentID   kernel.DepartmentID `json:"departmentId" db:"department_id"`
	DepartmentName string              `json:"departmentName" db:"department_name"`
}
