package applicationinfra

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/application"
)

// PostgresApplicationRepository implements application.Repository using PostgreSQL
type PostgresApplicationRepository struct {
	db *sqlx.DB
}

// NewPostgresApplicationRepository creates a new PostgreSQL application repository
func NewPostgresApplicationRepository(db *sqlx.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{
		db: db,
	}
}

// Create inserts a new application and fills in its generated ID
func (r *PostgresApplicationRepository) Create(ctx context.Context, app *application.Application) error {
	query := `
		INSERT INTO applications (user_id, job_id, status, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		app.UserID.Int64(), app.JobID.Int64(), string(app.Status), app.CreatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return application.ErrAlreadyApplied().
				WithDetail("user_id", app.UserID.String()).
				WithDetail("job_id", app.JobID.String())
		}
		return fmt.Errorf("failed to create application: %w", err)
	}

	app.ID = kernel.NewApplicationID(id)
	return nil
}

// GetByID retrieves an application by ID
func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	query := `SELECT id, user_id, job_id, status, created_at FROM applications WHERE id = $1`

	var app application.Application
	err := r.db.GetContext(ctx, &app, query, id.Int64())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, application.ErrApplicationNotFound()
		}
		return nil, fmt.Errorf("failed to get application by id: %w", err)
	}

	return &app, nil
}

const detailColumns = `
	a.id, a.user_id, a.job_id, a.status, a.created_at,
	u.name || ' ' || u.surname AS applicant_name,
	u.email AS applicant_email,
	j.title AS job_title,
	j.company_id,
	c.name AS company_name
`

// GetDetailByID loads one application joined with applicant, job and company
func (r *PostgresApplicationRepository) GetDetailByID(ctx context.Context, id kernel.ApplicationID) (*application.ApplicationResponse, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM applications a
		JOIN users u ON u.id = a.user_id
		JOIN jobs j ON j.id = a.job_id
		JOIN companies c ON c.id = j.company_id
		WHERE a.id = $1
	`, detailColumns)

	var detail application.ApplicationResponse
	err := r.db.GetContext(ctx, &detail, query, id.Int64())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, application.ErrApplicationNotFound()
		}
		return nil, fmt.Errorf("failed to get application detail: %w", err)
	}

	return &detail, nil
}

// Delete deletes an application by ID
func (r *PostgresApplicationRepository) Delete(ctx context.Context, id kernel.ApplicationID) error {
	query := `DELETE FROM applications WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id.Int64())
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return application.ErrApplicationNotFound()
	}

	return nil
}

// ExistsByUserAndJob checks whether a user already applied to a job
func (r *PostgresApplicationRepository) ExistsByUserAndJob(ctx context.Context, userID kernel.UserID, jobID kernel.JobID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE user_id = $1 AND job_id = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID.Int64(), jobID.Int64()); err != nil {
		return false, fmt.Errorf("failed to check application existence: %w", err)
	}

	return exists, nil
}

// List retrieves applications matching the scope filters
func (r *PostgresApplicationRepository) List(ctx context.Context, req application.ListApplicationsRequest) (*kernel.Paginated[application.ApplicationResponse], error) {
	whereConditions := []string{}
	args := []interface{}{}
	argCount := 1

	if req.UserID != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("a.user_id = $%d", argCount))
		args = append(args, req.UserID.Int64())
		argCount++
	}

	if req.CompanyID != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("j.company_id = $%d", argCount))
		args = append(args, req.CompanyID.Int64())
		argCount++
	}

	if req.Status != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("a.status = $%d", argCount))
		args = append(args, string(*req.Status))
		argCount++
	}

	whereClause := ""
	if len(whereConditions) > 0 {
		whereClause = "WHERE " + whereConditions[0]
		for i := 1; i < len(whereConditions); i++ {
			whereClause += " AND " + whereConditions[i]
		}
	}

	var total int
	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		%s
	`, whereClause)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM applications a
		JOIN users u ON u.id = a.user_id
		JOIN jobs j ON j.id = a.job_id
		JOIN companies c ON c.id = j.company_id
		%s
		ORDER BY a.created_at DESC
		LIMIT $%d OFFSET $%d
	`, detailColumns, whereClause, argCount, argCount+1)

	args = append(args, req.Pagination.PageSize, req.Pagination.Offset())

	responses := []application.ApplicationResponse{}
	if err := r.db.SelectContext(ctx, &responses, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return &kernel.Paginated[application.ApplicationResponse]{
		Items: responses,
		Page:  kernel.NewPage(req.Pagination, total),
		Empty: len(responses) == 0,
	}, nil
}

// UpdateStatus sets an application's lifecycle state
func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id kernel.ApplicationID, status application.Status) error {
	query := `UPDATE applications SET status = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, string(status), id.Int64())
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return application.ErrApplicationNotFound()
	}

	return nil
}
