package jobinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/job"
)

// PostgresJobRepository implements job.Repository using PostgreSQL
type PostgresJobRepository struct {
	db *sqlx.DB
}

// NewPostgresJobRepository creates a new PostgreSQL job repository
func NewPostgresJobRepository(db *sqlx.DB) *PostgresJobRepository {
	return &PostgresJobRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type jobRow struct {
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
	IsFavorited    bool           `db:"is_favorited"`
	HasApplied     bool           `db:"has_applied"`
}

// toResponse converts a joined row to the response DTO
func (m *jobRow) toResponse() job.JobResponse {
	return job.JobResponse{
		ID:             kernel.NewJobID(m.ID),
		Title:          m.Title,
		Description:    m.Description,
		Location:       m.Location,
		SalaryMin:      m.SalaryMin,
		SalaryMax:      m.SalaryMax,
		CompanyID:      kernel.NewCompanyID(m.CompanyID),
		CompanyName:    m.CompanyName,
		DepartmentName: m.DepartmentName,
		CreatedBy:      kernel.NewUserID(m.CreatedBy),
		CreatedAt:      m.CreatedAt,
		Skills:         []string(m.Skills),
		IsFavorited:    m.IsFavorited,
		HasApplied:     m.HasApplied,
		IsFilled:       m.IsFilled,
	}
}

// responseColumns renders the joined select list; the viewer id is bound at
// the given placeholder position
func responseColumns(viewerPos int) string {
	return fmt.Sprintf(`
	j.id, j.title, j.description, j.location, j.salary_min, j.salary_max,
	j.company_id, c.name AS company_name, d.name AS department_name,
	j.created_by, j.created_at, j.is_filled,
	COALESCE(array_agg(s.name ORDER BY s.name) FILTER (WHERE s.name IS NOT NULL), '{}') AS skills,
	($%[1]d > 0 AND EXISTS(SELECT 1 FROM favorites f WHERE f.user_id = $%[1]d AND f.job_id = j.id)) AS is_favorited,
	($%[1]d > 0 AND EXISTS(SELECT 1 FROM applications a WHERE a.user_id = $%[1]d AND a.job_id = j.id)) AS has_applied
`, viewerPos)
}

func viewerArg(viewerID *kernel.UserID) int64 {
	if viewerID == nil {
		return 0
	}
	return viewerID.Int64()
}

// ============================================================================
// Repository Implementation
// ============================================================================

// CreateWithSkills inserts the posting and its skill junction rows in one
// transaction. A failure on any skill row rolls the posting back.
func (r *PostgresJobRepository) CreateWithSkills(ctx context.Context, j *job.Job, skillIDs []kernel.SkillID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO jobs (
			created_by, company_id, department_id, title,
			description, location, salary_min, salary_max, is_filled, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	var id int64
	err = tx.GetContext(ctx, &id, query,
		j.CreatedBy.Int64(), j.CompanyID.Int64(), j.DepartmentID.Int64(), j.Title,
		j.Description, j.Location, j.SalaryMin, j.SalaryMax, j.IsFilled, j.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	if err := insertSkills(ctx, tx, id, skillIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit job creation: %w", err)
	}

	j.ID = kernel.NewJobID(id)
	return nil
}

// UpdateWithSkills updates the posting and replaces its skill junction rows
// in one transaction
func (r *PostgresJobRepository) UpdateWithSkills(ctx context.Context, id kernel.JobID, j *job.Job, skillIDs []kernel.SkillID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE jobs SET
			department_id = $1,
			title = $2,
			description = $3,
			location = $4,
			salary_min = $5,
			salary_max = $6
		WHERE id = $7
	`

	result, err := tx.ExecContext(ctx, query,
		j.DepartmentID.Int64(), j.Title, j.Description, j.Location,
		j.SalaryMin, j.SalaryMax, id.Int64(),
	)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return job.ErrJobNotFound()
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM job_skills WHERE job_id = $1`, id.Int64()); err != nil {
		return fmt.Errorf("failed to clear job skills: %w", err)
	}

	if err := insertSkills(ctx, tx, id.Int64(), skillIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit job update: %w", err)
	}

	return nil
}

// insertSkills writes the junction rows inside the caller's transaction
func insertSkills(ctx context.Context, tx *sqlx.Tx, jobID int64, skillIDs []kernel.SkillID) error {
	for _, skillID := range skillIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO job_skills (job_id, skill_id) VALUES ($1, $2)`,
			jobID, skillID.Int64(),
		)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				switch pqErr.Code {
				case "23503": // foreign_key_violation
					return job.ErrInvalidSkillSet().WithDetail("skill_id", skillID.String())
				case "23505": // unique_violation
					return job.ErrInvalidSkillSet().WithDetail("duplicate_skill_id", skillID.String())
				}
			}
			return fmt.Errorf("failed to attach skill: %w", err)
		}
	}
	return nil
}

// GetByID retrieves a job by ID
func (r *PostgresJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	query := `
		SELECT
			id, created_by, company_id, department_id, title,
			description, location, salary_min, salary_max, is_filled, created_at
		FROM jobs
		WHERE id = $1
	`

	var j job.Job
	err := r.db.GetContext(ctx, &j, query, id.Int64())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrJobNotFound()
		}
		return nil, fmt.Errorf("failed to get job by id: %w", err)
	}

	return &j, nil
}

// Delete deletes a job by ID. Applications, favorites and skill rows cascade
// with the posting.
func (r *PostgresJobRepository) Delete(ctx context.Context, id kernel.JobID) error {
	query := `DELETE FROM jobs WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id.Int64())
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}

// SetFilled updates a posting's fill status
func (r *PostgresJobRepository) SetFilled(ctx context.Context, id kernel.JobID, filled bool) error {
	query := `UPDATE jobs SET is_filled = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, filled, id.Int64())
	if err != nil {
		return fmt.Errorf("failed to set job fill status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}

// buildListQueries renders the count and page queries for a listing request.
// The count query binds only the filter args; the page query additionally
// binds the viewer id and the paging window, in that order.
func buildListQueries(req job.ListJobsRequest) (countQuery string, countArgs []interface{}, pageQuery string, pageArgs []interface{}) {
	whereConditions := []string{}
	args := []interface{}{}
	argCount := 1

	if req.Search != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("(j.title ILIKE $%d OR j.description ILIKE $%d)", argCount, argCount))
		args = append(args, "%"+req.Search+"%")
		argCount++
	}

	if req.SectorID != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("c.sector_id = $%d", argCount))
		args = append(args, req.SectorID.Int64())
		argCount++
	}

	if req.CompanyID != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("j.company_id = $%d", argCount))
		args = append(args, req.CompanyID.Int64())
		argCount++
	}

	if req.IsFilled != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("j.is_filled = $%d", argCount))
		args = append(args, *req.IsFilled)
		argCount++
	}

	whereClause := ""
	if len(whereConditions) > 0 {
		whereClause = "WHERE " + whereConditions[0]
		for i := 1; i < len(whereConditions); i++ {
			whereClause += " AND " + whereConditions[i]
		}
	}

	countQuery = fmt.Sprintf(`
		SELECT COUNT(*)
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		%s
	`, whereClause)
	countArgs = args

	pageQuery = fmt.Sprintf(`
		SELECT %s
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		JOIN departments d ON d.id = j.department_id
		LEFT JOIN job_skills js ON js.job_id = j.id
		LEFT JOIN skills s ON s.id = js.skill_id
		%s
		GROUP BY j.id, c.name, d.name
		ORDER BY j.created_at DESC
		LIMIT $%d OFFSET $%d
	`, responseColumns(argCount), whereClause, argCount+1, argCount+2)

	pageArgs = make([]interface{}, 0, len(args)+3)
	pageArgs = append(pageArgs, args...)
	pageArgs = append(pageArgs, viewerArg(req.ViewerID), req.Pagination.PageSize, req.Pagination.Offset())

	return countQuery, countArgs, pageQuery, pageArgs
}

// List retrieves postings matching the filters, with joined names, skills and
// the viewer's flags
func (r *PostgresJobRepository) List(ctx context.Context, req job.ListJobsRequest) (*kernel.Paginated[job.JobResponse], error) {
	countQuery, countArgs, pageQuery, pageArgs := buildListQueries(req)

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	var rows []jobRow
	if err := r.db.SelectContext(ctx, &rows, pageQuery, pageArgs...); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	responses := make([]job.JobResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, rows[i].toResponse())
	}

	return &kernel.Paginated[job.JobResponse]{
		Items: responses,
		Page:  kernel.NewPage(req.Pagination, total),
		Empty: len(responses) == 0,
	}, nil
}

// GetResponseByID retrieves one posting with joined names, skills and the
// viewer's flags
func (r *PostgresJobRepository) GetResponseByID(ctx context.Context, id kernel.JobID, viewerID *kernel.UserID) (*job.JobResponse, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		JOIN departments d ON d.id = j.department_id
		LEFT JOIN job_skills js ON js.job_id = j.id
		LEFT JOIN skills s ON s.id = js.skill_id
		WHERE j.id = $2
		GROUP BY j.id, c.name, d.name
	`, responseColumns(1))

	var row jobRow
	err := r.db.GetContext(ctx, &row, query, viewerArg(viewerID), id.Int64())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrJobNotFound()
		}
		return nil, fmt.Errorf("failed to get job response: %w", err)
	}

	resp := row.toResponse()
	return &resp, nil
}
