package cv

import (
	"context"

	"github.com/openhire/jobportal/pkg/kernel"
)

// Repository defines persistence operations for CVs. Writes that touch the
// CV and its skill junction rows happen in a single transaction.
type Repository interface {
	// CreateWithSkills inserts the CV and its skill rows atomically
	CreateWithSkills(ctx context.Context, cv *CV, skillIDs []kernel.SkillID) error
	// UpdateWithSkills updates the CV and replaces its skill rows atomically
	UpdateWithSkills(ctx context.Context, id kernel.CVID, cv *CV, skillIDs []kernel.SkillID) error
	GetByID(ctx context.Context, id kernel.CVID) (*CV, error)
	GetResponseByID(ctx context.Context, id kernel.CVID) (*CVResponse, error)
	Delete(ctx context.Context, id kernel.CVID) error
	ListByUser(ctx context.Context, userID kernel.UserID) ([]CVResponse, error)
	// GetLatestResponseByUser returns the user's most recently created CV
	GetLatestResponseByUser(ctx context.Context, userID kernel.UserID) (*CVResponse, error)
}
