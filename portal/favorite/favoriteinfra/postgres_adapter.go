package favoriteinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/favorite"
	"github.com/openhire/jobportal/portal/job"
)

// PostgresFavoriteRepository implements favorite.Repository using PostgreSQL
type PostgresFavoriteRepository struct {
	db *sqlx.DB
}

// NewPostgresFavoriteRepository creates a new PostgreSQL favorite repository
func NewPostgresFavoriteRepository(db *sqlx.DB) *PostgresFavoriteRepository {
	return &PostgresFavoriteRepository{
		db: db,
	}
}

// Add inserts a favorite and fills in its generated ID
func (r *PostgresFavoriteRepository) Add(ctx context.Context, fav *favorite.Favorite) error {
	query := `
		INSERT INTO favorites (user_id, job_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query, fav.UserID.Int64(), fav.JobID.Int64(), fav.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return favorite.ErrAlreadyFavorited().
				WithDetail("user_id", fav.UserID.String()).
				WithDetail("job_id", fav.JobID.String())
		}
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	fav.ID = id
	return nil
}

// RemoveByUserAndJob deletes the user's favorite for a job
func (r *PostgresFavoriteRepository) RemoveByUserAndJob(ctx context.Context, userID kernel.UserID, jobID kernel.JobID) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND job_id = $2`

	result, err := r.db.ExecContext(ctx, query, userID.Int64(), jobID.Int64())
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return favorite.ErrFavoriteNotFound()
	}

	return nil
}

// ExistsByUserAndJob checks whether a user already saved a job
func (r *PostgresFavoriteRepository) ExistsByUserAndJob(ctx context.Context, userID kernel.UserID, jobID kernel.JobID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND job_id = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID.Int64(), jobID.Int64()); err != nil {
		return false, fmt.Errorf("failed to check favorite existence: %w", err)
	}

	return exists, nil
}

type favoriteJobRow struct {
	ID             int64          `db:"id"`
	Title          string         `db:"title"`
	Description    *string        `db:"description"`
	Location       *string        `db:"location"`
	SalaryMin      *float64       `db:"salary_min"`
	SalaryMax      *float64       `db:"salary_max"`
	CompanyID      int64          `db:"company_id"`
	CompanyName    string         `db:"company_name"`
	DepartmentName string         `db:"department_name"`
	CreatedBy      int64          `db:"created_by"`
	CreatedAt      time.Time      `db:"created_at"`
	IsFilled       bool           `db:"is_filled"`
	Skills         pq.StringArray `db:"skills"`
	HasApplied     bool           `db:"has_applied"`
}

// ListJobsByUser returns the user's saved jobs as full postings, newest
// favorite first
func (r *PostgresFavoriteRepository) ListJobsByUser(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[job.JobResponse], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM favorites WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, userID.Int64()); err != nil {
		return nil, fmt.Errorf("failed to count favorites: %w", err)
	}

	query := `
		SELECT
			j.id, j.title, j.description, j.location, j.salary_min, j.salary_max,
			j.company_id, c.name AS company_name, d.name AS department_name,
			j.created_by, j.created_at, j.is_filled,
			COALESCE(array_agg(s.name ORDER BY s.name) FILTER (WHERE s.name IS NOT NULL), '{}') AS skills,
			EXISTS(SELECT 1 FROM applications a WHERE a.user_id = $1 AND a.job_id = j.id) AS has_applied
		FROM favorites f
		JOIN jobs j ON j.id = f.job_id
		JOIN companies c ON c.id = j.company_id
		JOIN departments d ON d.id = j.department_id
		LEFT JOIN job_skills js ON js.job_id = j.id
		LEFT JOIN skills s ON s.id = js.skill_id
		WHERE f.user_id = $1
		GROUP BY j.id, c.name, d.name, f.created_at
		ORDER BY f.created_at DESC
		LIMIT $2 OFFSET $3
	`

	var rows []favoriteJobRow
	err := r.db.SelectContext(ctx, &rows, query, userID.Int64(), pagination.PageSize, pagination.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite jobs: %w", err)
	}

	responses := make([]job.JobResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, job.JobResponse{
			ID:             kernel.NewJobID(row.ID),
			Title:          row.Title,
			Description:    row.Description,
			Location:       row.Location,
			SalaryMin:      row.SalaryMin,
			SalaryMax:      row.SalaryMax,
			CompanyID:      kernel.NewCompanyID(row.CompanyID),
			CompanyName:    row.CompanyName,
			DepartmentName: row.DepartmentName,
			CreatedBy:      kernel.NewUserID(row.CreatedBy),
			CreatedAt:      row.CreatedAt,
			Skills:         []string(row.Skills),
			IsFavorited:    true,
			HasApplied:     row.HasApplied,
			IsFilled:       row.IsFilled,
		})
	}

	return &kernel.Paginated[job.JobResponse]{
		Items: responses,
		Page:  kernel.NewPage(pagination, total),
		Empty: len(responses) == 0,
	}, nil
}
