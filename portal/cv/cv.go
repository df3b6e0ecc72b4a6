// Package cv holds job seeker CVs and the skills tagged on them.
package cv

import (
	"time"

	"github.com/openhire/jobportal/pkg/kernel"
)

// CV is a job seeker's resume record. A user can keep several; employers see
// the most recent one.
type CV struct {
	ID              kernel.CVID   `json:"id" db:"id"`
	UserID          kernel.UserID `json:"userId" db:"user_id"`
	Summary         *string       `json:"summary,omitempty" db:"summary"`
	ExperienceYears *int          `json:"experienceYears,omitempty" db:"experience_years"`
	EducationLevel  *string       `json:"educationLevel,omitempty" db:"education_level"`
	SkillsText      *string       `json:"skillsText,omitempty" db:"skills_text"`
	CreatedAt       time.Time     `json:"createdAt" db:"created_at"`
}
