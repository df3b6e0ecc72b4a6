package kernel

import "strconv"

type UserID int64

func NewUserID(id int64) UserID { return UserID(id) }
func (u UserID) Int64() int64 { return int64(u) }
func (u UserID) String() string { return strconv.FormatInt(int64(u), 10) }
func (u UserID) IsZero() bool { return int64(u) == 0 }

type CompanyID int64

func NewCompanyID(id int64) CompanyID { return CompanyID(id) }
func (c CompanyID) Int64() int64 { return int64(c) }
func (c CompanyID) String() string { return strconv.FormatInt(int64(c), 10) }
func (c CompanyID) IsZero() bool { return int64(c) == 0 }

type SectorID int64

func NewSectorID(id int64) SectorID { return SectorID(id) }
func (s SectorID) Int64() int64 { return int64(s) }
func (s SectorID) String() string { return strconv.FormatInt(int64(s), 10) }
func (s SectorID) IsZero() bool { return int64(s) == 0 }

type DepartmentID int64

func NewDepartmentID(id int64) DepartmentID { return DepartmentID(id) }
func (d DepartmentID) Int64() int64 { return int64(d) }
func (d DepartmentID) String() string { return strconv.FormatInt(int64(d), 10) }
func (d DepartmentID) IsZero() bool { return int64(d) == 0 }

type JobID int64

func NewJobID(id int64) JobID { return JobID(id) }
func (j JobID) Int64() int64 { return int64(j) }
func (j JobID) String() string { return strconv.FormatInt(int64(j), 10) }
func (j JobID) IsZero() bool { return int64(j) == 0 }

type ApplicationID int64

func NewApplicationID(id int64) ApplicationID { return ApplicationID(id) }
func (a ApplicationID) Int64() int64 { return int64(a) }
func (a ApplicationID) String() string { return strconv.FormatInt(int64(a), 10) }
func (a ApplicationID) IsZero() bool { return int64(a) == 0 }

type SkillID int64

func NewSkillID(id int64) SkillID { return SkillID(id) }
func (s SkillID) Int64() int64 { return int64(s) }
func (s SkillID) String() string { return strconv.FormatInt(int64(s), 10) }
func (s SkillID) IsZero() bool { return int64(s) == 0 }

type CVID int64

func NewCVID(id int64) CVID { return CVID(id) }
func (c CVID) Int64() int64 { return int64(c) }
func (c CVID) String() string { return strconv.FormatInt(int64(c), 10) }
func (c CVID) IsZero() bool { return int64(c) == 0 }

type Email string

func (e Email) String() string { return string(e) }
func (e Email) IsEmpty() bool { return string(e) == "" }

// ParseID parses a decimal id string; zero on failure
func ParseID(s string) int64 {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
