// Package application holds job applications and their lifecycle.
package application

import (
	"time"

	"github.com/openhire/jobportal/pkg/kernel"
)

// Status is the lifecycle state of an application
type Status string

const (
	StatusPending  Status = "Pending"
	StatusAccepted Status = "Accepted"
	StatusRejected Status = "Rejected"
)

// IsValid checks if the status is a known lifecycle state
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the status is a final decision
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// CanTransitionTo reports whether the lifecycle allows moving to the target
// state. Only a pending application can be decided; decisions are final.
func (s Status) CanTransitionTo(target Status) bool {
	return s == StatusPending && target.IsTerminal()
}

// Application is a job seeker's application to a posting. The (user, job)
// pair is unique.
type Application struct {
	ID        kernel.ApplicationID `json:"id" db:"id"`
	UserID    kernel.UserID        `json:"userId" db:"user_id"`
	JobID     kernel.JobID         `json:"jobId" db:"job_id"`
	Status    Status               `json:"status" db:"status"`
	CreatedAt time.Time            `json:"createdAt" db:"created_at"`
}
