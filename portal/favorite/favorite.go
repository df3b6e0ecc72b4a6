// Package favorite holds job seekers' saved jobs. The (user, job) pair is
// unique.
package favorite

import (
	"time"

	"github.com/openhire/jobportal/pkg/kernel"
)

// Favorite marks a job as saved by a user
type Favorite struct {
	ID        int64         `json:"id" db:"id"`
	UserID    kernel.UserID `json:"userId" db:"user_id"`
	JobID     kernel.JobID  `json:"jobId" db:"job_id"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
}
