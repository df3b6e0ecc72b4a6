package cv

import (
	"time"

	"github.com/openhire/jobportal/pkg/kernel"
)

// CreateCVRequest is the payload for creating a CV
type CreateCVRequest struct {
	Summary         *string          `json:"summary"`
	ExperienceYears *int             `json:"experienceYears"`
	EducationLevel  *string          `json:"educationLevel"`
	SkillsText      *string          `json:"skillsText"`
	SkillIDs        []kernel.SkillID `json:"skillIds"`
}

// UpdateCVRequest is the payload for updating a CV. The skill list replaces
// the stored one entirely.
type UpdateCVRequest struct {
	Summary         *string          `json:"summary"`
	ExperienceYears *int             `json:"experienceYears"`
	EducationLevel  *string          `json:"educationLevel"`
	SkillsText      *string          `json:"skillsText"`
	SkillIDs        []kernel.SkillID `json:"skillIds"`
}

// CVResponse is a CV joined with its tagged skill names
type CVResponse struct {
	ID              kernel.CVID   `json:"id" db:"id"`
	UserID          kernel.UserID `json:"userId" db:"user_id"`
	Summary         *string       `json:"summary,omitempty" db:"summary"`
	ExperienceYears *int          `json:"experienceYears,omitempty" db:"experience_years"`
	EducationLevel  *string       `json:"educationLevel,omitempty" db:"education_level"`
	SkillsText      *string       `json:"skillsText,omitempty" db:"skills_text"`
	CreatedAt       time.Time     `json:"createdAt" db:"created_at"`
	Skills          []string      `json:"skills"`
}
