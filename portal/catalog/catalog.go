// Package catalog holds the reference entities the rest of the system points
// at: sectors, departments and skills.
package catalog

import (
	"strings"

	"github.com/openhire/jobportal/pkg/kernel"
)

// Sector is an industry classification for companies
type Sector struct {
	ID   kernel.SectorID `json:"id" db:"id"`
	Name string          `json:"name" db:"name"`
}

// Department is a functional area jobs are posted under
type Department struct {
	ID   kernel.DepartmentID `json:"id" db:"id"`
	Name string              `json:"name" db:"name"`
}

// Skill is a competency referenced by jobs and CVs
type Skill struct {
	ID   kernel.SkillID `json:"id" db:"id"`
	Name string         `json:"name" db:"name"`
}

// NormalizeName trims the surrounding whitespace catalog names are compared
// and stored without
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}
