package dashboardinfra

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/openhire/jobportal/portal/dashboard"
)

// PostgresDashboardRepository implements dashboard.Repository backed by Postgres
type PostgresDashboardRepository struct {
	db *sqlx.DB
}

// NewPostgresDashboardRepository creates a new instance of the repository
func NewPostgresDashboardRepository(db *sqlx.DB) *PostgresDashboardRepository {
	return &PostgresDashboardRepository{db: db}
}

func (r *PostgresDashboardRepository) CountUsersByRole(ctx context.Context) (*dashboard.RoleCounts, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE role = 'Admin') AS admins,
			COUNT(*) FILTER (WHERE role = 'Employer') AS employers,
			COUNT(*) FILTER (WHERE role = 'JobSeeker') AS job_seekers
		FROM users`

	var counts dashboard.RoleCounts
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		return nil, err
	}
	return &counts, nil
}

func (r *PostgresDashboardRepository) CountCompanies(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM companies`); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresDashboardRepository) CountJobs(ctx context.Context) (total, open, filled int64, err error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE NOT is_filled) AS open,
			COUNT(*) FILTER (WHERE is_filled) AS filled
		FROM jobs`

	var row struct {
		Total  int64 `db:"total"`
		Open   int64 `db:"open"`
		Filled int64 `db:"filled"`
	}
	if err := r.db.GetContext(ctx, &row, query); err != nil {
		return 0, 0, 0, err
	}
	return row.Total, row.Open, row.Filled, nil
}

func (r *PostgresDashboardRepository) CountApplicationsByStatus(ctx context.Context) (*dashboard.StatusCounts, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'Pending') AS pending,
			COUNT(*) FILTER (WHERE status = 'Accepted') AS accepted,
			COUNT(*) FILTER (WHERE status = 'Rejected') AS rejected
		FROM applications`

	var counts dashboard.StatusCounts
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		return nil, err
	}
	return &counts, nil
}

func (r *PostgresDashboardRepository) CompaniesBySector(ctx context.Context) ([]dashboard.GroupCount, error) {
	query := `
		SELECT s.name AS name, COUNT(c.id) AS count
		FROM sectors s
		LEFT JOIN companies c ON c.sector_id = s.id
		GROUP BY s.id, s.name
		ORDER BY count DESC, s.name ASC`

	rows := []dashboard.GroupCount{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PostgresDashboardRepository) JobsByDepartment(ctx context.Context) ([]dashboard.GroupCount, error) {
	query := `
		SELECT d.name AS name, COUNT(j.id) AS count
		FROM departments d
		LEFT JOIN jobs j ON j.department_id = d.id
		GROUP BY d.id, d.name
		ORDER BY count DESC, d.name ASC`

	rows := []dashboard.GroupCount{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	return rows, nil
}
