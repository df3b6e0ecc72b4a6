package dashboard

// RoleCounts breaks the user base down by role
type RoleCounts struct {
	Admins     int64 `db:"admins" json:"admins"`
	Employers  int64 `db:"employers" json:"employers"`
	JobSeekers int64 `db:"job_seekers" json:"job_seekers"`
}

// StatusCounts breaks applications down by decision status
type StatusCounts struct {
	Pending  int64 `db:"pending" json:"pending"`
	Accepted int64 `db:"accepted" json:"accepted"`
	Rejected int64 `db:"rejected" json:"rejected"`
}

// GroupCount is a generic name-to-count row for grouped stats
type GroupCount struct {
	Name  string `db:"name" json:"name"`
	Count int64  `db:"count" json:"count"`
}

// StatsResponse is the admin dashboard snapshot
type StatsResponse struct {
	TotalUsers           int64        `json:"total_users"`
	UsersByRole          RoleCounts   `json:"users_by_role"`
	TotalCompanies       int64        `json:"total_companies"`
	TotalJobs            int64        `json:"total_jobs"`
	OpenJobs             int64        `json:"open_jobs"`
	FilledJobs           int64        `json:"filled_jobs"`
	TotalApplications    int64        `json:"total_applications"`
	ApplicationsByStatus StatusCounts `json:"applications_by_status"`
	CompaniesBySector    []GroupCount `json:"companies_by_sector"`
	JobsByDepartment     []GroupCount `json:"jobs_by_department"`
}
