package application

import (
	"time"

	"github.com/openhire/jobportal/pkg/kernel"
)

// UpdateStatusRequest is the payload for deciding an application
type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

// ListApplicationsRequest describes the visibility filters applied when
// listing. UserID and CompanyID come from the caller's scope, never from
// client input.
type ListApplicationsRequest struct {
	UserID     *kernel.UserID
	CompanyID  *kernel.CompanyID
	Status     *Status
	Pagination kernel.PaginationOptions
}

// ApplicationResponse is an application joined with applicant, job and company
type ApplicationResponse struct {
	ID             kernel.ApplicationID `json:"id" db:"id"`
	UserID         kernel.UserID        `json:"userId" db:"user_id"`
	ApplicantName  string               `json:"applicantName" db:"applicant_name"`
	ApplicantEmail string               `json:"applicantEmail" db:"applicant_email"`
	JobID          kernel.JobID         `json:"jobId" db:"job_id"`
	JobTitle       string               `json:"jobTitle" db:"job_title"`
	CompanyID      kernel.CompanyID     `json:"companyId" db:"company_id"`
	CompanyName    string               `json:"companyName" db:"company_name"`
	Status         Status               `json:"status" db:"status"`
	CreatedAt      time.Time            `json:"createdAt" db:"created_at"`
}
