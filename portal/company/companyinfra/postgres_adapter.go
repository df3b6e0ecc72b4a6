package companyinfra

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/company"
)

// PostgresCompanyRepository implements company.Repository using PostgreSQL
type PostgresCompanyRepository struct {
	db *sqlx.DB
}

// NewPostgresCompanyRepository creates a new PostgreSQL company repository
func NewPostgresCompanyRepository(db *sqlx.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{
		db: db,
	}
}

// Create inserts a new company and fills in its generated ID
func (r *PostgresCompanyRepository) Create(ctx context.Context, c *company.Company) error {
	query := `
		INSERT INTO companies (sector_id, name, description, location)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query, c.SectorID.Int64(), c.Name, c.Description, c.Location)
	if err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}

	c.ID = kernel.NewCompanyID(id)
	return nil
}

// Update updates an existing company
func (r *PostgresCompanyRepository) Update(ctx context.Context, id kernel.CompanyID, c *company.Company) error {
	query := `
		UPDATE companies SET
			sector_id = $1,
			name = $2,
			description = $3,
			location = $4
		WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query, c.SectorID.Int64(), c.Name, c.Description, c.Location, id.Int64())
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return company.ErrCompanyNotFound()
	}

	return nil
}

// GetByID retrieves a company by ID
func (r *PostgresCompanyRepository) GetByID(ctx context.Context, id kernel.CompanyID) (*company.Company, error) {
	query := `SELECT id, sector_id, name, description, location FROM companies WHERE id = $1`

	var c company.Company
	err := r.db.GetContext(ctx, &c, query, id.Int64())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, company.ErrCompanyNotFound()
		}
		return nil, fmt.Errorf("failed to get company by id: %w", err)
	}

	return &c, nil
}

// Delete deletes a company by ID
func (r *PostgresCompanyRepository) Delete(ctx context.Context, id kernel.CompanyID) error {
	query := `DELETE FROM companies WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id.Int64())
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return company.ErrCompanyNotFound()
	}

	return nil
}

const companyResponseColumns = `
	c.id, c.name, c.description, c.location,
	s.name AS sector_name,
	(SELECT COUNT(*) FROM users u WHERE u.company_id = c.id) AS employee_count,
	(SELECT COUNT(*) FROM jobs j WHERE j.company_id = c.id) AS job_count
`

// List retrieves all companies with sector names and usage counts
func (r *PostgresCompanyRepository) List(ctx context.Context) ([]company.CompanyResponse, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM companies c
		JOIN sectors s ON s.id = c.sector_id
		ORDER BY c.name
	`, companyResponseColumns)

	companies := []company.CompanyResponse{}
	if err := r.db.SelectContext(ctx, &companies, query); err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	return companies, nil
}

// GetResponseByID retrieves one company with sector name and usage counts
func (r *PostgresCompanyRepository) GetResponseByID(ctx context.Context, id kernel.CompanyID) (*company.CompanyResponse, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM companies c
		JOIN sectors s ON s.id = c.sector_id
		WHERE c.id = $1
	`, companyResponseColumns)

	var resp company.CompanyResponse
	err := r.db.GetContext(ctx, &resp, query, id.Int64())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, company.ErrCompanyNotFound()
		}
		return nil, fmt.Errorf("failed to get company response: %w", err)
	}

	return &resp, nil
}

// CountEmployees counts the users associated with a company
func (r *PostgresCompanyRepository) CountEmployees(ctx context.Context, id kernel.CompanyID) (int64, error) {
	query := `SELECT COUNT(*) FROM users WHERE company_id = $1`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, id.Int64()); err != nil {
		return 0, fmt.Errorf("failed to count company employees: %w", err)
	}

	return count, nil
}

// CountJobs counts the jobs posted by a company
func (r *PostgresCompanyRepository) CountJobs(ctx context.Context, id kernel.CompanyID) (int64, error) {
	query := `SELECT COUNT(*) FROM jobs WHERE company_id = $1`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, id.Int64()); err != nil {
		return 0, fmt.Errorf("failed to count company jobs: %w", err)
	}

	return count, nil
}

// ============================================================================
// Worker Repository
// ============================================================================

// PostgresWorkerRepository implements company.WorkerRepository using PostgreSQL
type PostgresWorkerRepository struct {
	db *sqlx.DB
}

// NewPostgresWorkerRepository creates a new PostgreSQL worker repository
func NewPostgresWorkerRepository(db *sqlx.DB) *PostgresWorkerRepository {
	return &PostgresWorkerRepository{
		db: db,
	}
}

// Add inserts a worker assignment and fills in its generated ID
func (r *PostgresWorkerRepository) Add(ctx context.Context, w *company.Worker) error {
	query := `
		INSERT INTO company_workers (company_id, user_id, department_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query, w.CompanyID.Int64(), w.UserID.Int64(), w.DepartmentID.Int64())
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return company.ErrWorkerAlreadyAssigned().
				WithDetail("company_id", w.CompanyID.String()).
				WithDetail("user_id", w.UserID.String())
		}
		return fmt.Errorf("failed to add company worker: %w", err)
	}

	w.ID = id
	return nil
}

// Remove deletes a worker assignment by ID
func (r *PostgresWorkerRepository) Remove(ctx context.Context, id int64) error {
	query := `DELETE FROM company_workers WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to remove company worker: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return company.ErrWorkerNotFound()
	}

	return nil
}

// ListByCompany retrieves worker assignments joined with user and department names
func (r *PostgresWorkerRepository) ListByCompany(ctx context.Context, companyID kernel.CompanyID) ([]company.WorkerResponse, error) {
	query := `
		SELECT
			w.id, w.user_id, w.department_id,
			u.name, u.surname, u.email,
			d.name AS department_name
		FROM company_workers w
		JOIN users u ON u.id = w.user_id
		JOIN departments d ON d.id = w.department_id
		WHERE w.company_id = $1
		ORDER BY u.surname, u.name
	`

	workers := []company.WorkerResponse{}
	if err := r.db.SelectContext(ctx, &workers, query, companyID.Int64()); err != nil {
		return nil, fmt.Errorf("failed to list company workers: %w", err)
	}

	return workers, nil
}
