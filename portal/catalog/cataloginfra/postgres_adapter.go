package cataloginfra

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/catalog"
)

// ============================================================================
// Sector Repository
// ============================================================================

// PostgresSectorRepository implements catalog.SectorRepository using PostgreSQL
type PostgresSectorRepository struct {
	db *sqlx.DB
}

// NewPostgresSectorRepository creates a new PostgreSQL sector repository
func NewPostgresSectorRepository(db *sqlx.DB) *PostgresSectorRepository {
	return &PostgresSectorRepository{
		db: db,
	}
}

// Create inserts a new sector and fills in its generated ID
func (r *PostgresSectorRepository) Create(ctx context.Context, sector *catalog.Sector) error {
	query := `INSERT INTO sectors (name) VALUES ($1) RETURNING id`

	var id int64
	if err := r.db.GetContext(ctx, &id, query, sector.Name); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return catalog.ErrNameAlreadyExists().WithDetail("name", sector.Name)
		}
		return fmt.Errorf("failed to create sector: %w", err)
	}

	sector.ID = kernel.NewSectorID(id)
	return nil
}

// Update updates an existing sector
func (r *PostgresSectorRepository) Update(ctx context.Context, id kernel.SectorID, sector *catalog.Sector) error {
	query := `UPDATE sectors SET name = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, sector.Name, id.Int64())
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return catalog.ErrNameAlreadyExists().WithDetail("name", sector.Name)
		}
		return fmt.Errorf("failed to update sector: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return catalog.ErrSectorNotFound()
	}

	return nil
}

// GetByID retrieves a sector by ID
func (r *PostgresSectorRepository) GetByID(ctx context.Context, id kernel.SectorID) (*catalog.Sector, error) {
	query := `SELECT id, name FROM sectors WHERE id = $1`

	var sector catalog.Sector
	err := r.db.GetContext(ctx, &sector, query, id.Int64())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, catalog.ErrSectorNotFound()
		}
		return nil, fmt.Errorf("failed to get sector by id: %w", err)
	}

	return &sector, nil
}

// Delete deletes a sector by ID
func (r *PostgresSectorRepository) Delete(ctx context.Context, id kernel.SectorID) error {
	query := `DELETE FROM sectors WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id.Int64())
	if err != nil {
		return fmt.Errorf("failed to delete sector: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return catalog.ErrSectorNotFound()
	}

	return nil
}

// List retrieves all sectors with their company counts
func (r *PostgresSectorRepository) List(ctx context.Context) ([]catalog.SectorResponse, error) {
	query := `
		SELECT
			s.id, s.name,
			COUNT(c.id) AS company_count
		FROM sectors s
		LEFT JOIN companies c ON c.sector_id = s.id
		GROUP BY s.id, s.name
		ORDER BY s.name
	`

	sectors := []catalog.SectorResponse{}
	if err := r.db.SelectContext(ctx, &sectors, query); err != nil {
		return nil, fmt.Errorf("failed to list sectors: %w", err)
	}

	return sectors, nil
}

// ExistsByName checks if a sector exists with the given name
func (r *PostgresSectorRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM sectors WHERE name = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, name); err != nil {
		return false, fmt.Errorf("failed to check sector name: %w", err)
	}

	return exists, nil
}

// CountCompanies counts the companies assigned to a sector
func (r *PostgresSectorRepository) CountCompanies(ctx context.Context, id kernel.SectorID) (int64, error) {
	query := `SELECT COUNT(*) FROM companies WHERE sector_id = $1`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, id.Int64()); err != nil {
		return 0, fmt.Errorf("failed to count sector companies: %w", err)
	}

	return count, nil
}

// ============================================================================
// Department Repository
// ============================================================================

// PostgresDepartmentRepository implements catalog.DepartmentRepository using PostgreSQL
type PostgresDepartmentRepository struct {
	db *sqlx.DB
}

// NewPostgresDepartmentRepository creates a new PostgreSQL department repository
func NewPostgresDepartmentRepository(db *sqlx.DB) *PostgresDepartmentRepository {
	return &PostgresDepartmentRepository{
		db: db,
	}
}

// Create inserts a new department and fills in its generated ID
func (r *PostgresDepartmentRepository) Create(ctx context.Context, department *catalog.Department) error {
	query := `INSERT INTO departments (name) VALUES ($1) RETURNING id`

	var id int64
	if err := r.db.GetContext(ctx, &id, query, department.Name); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return catalog.ErrNameAlreadyExists().WithDetail("name", department.Name)
		}
		return fmt.Errorf("failed to create department: %w", err)
	}

	department.ID = kernel.NewDepartmentID(id)
	return nil
}

// Update updates an existing department
func (r *PostgresDepartmentRepository) Update(ctx context.Context, id kernel.DepartmentID, department *catalog.Department) error {
	query := `UPDATE departments SET name = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, department.Name, id.Int64())
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return catalog.ErrNameAlreadyExists().WithDetail("name", department.Name)
		}
		return fmt.Errorf("failed to update department: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return catalog.ErrDepartmentNotFound()
	}

	return nil
}

// GetByID retrieves a department by ID
func (r *PostgresDepartmentRepository) GetByID(ctx context.Context, id kernel.DepartmentID) (*catalog.Department, error) {
	query := `SELECT id, name FROM departments WHERE id = $1`

	var department catalog.Department
	err := r.db.GetContext(ctx, &department, query, id.Int64())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, catalog.ErrDepartmentNotFound()
		}
		return nil, fmt.Errorf("failed to get department by id: %w", err)
	}

	return &department, nil
}

// Delete deletes a department by ID
func (r *PostgresDepartmentRepository) Delete(ctx context.Context, id kernel.DepartmentID) error {
	query := `DELETE FROM departments WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id.Int64())
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return catalog.ErrDepartmentNotFound()
	}

	return nil
}

// List retrieves all departments with their job counts
func (r *PostgresDepartmentRepository) List(ctx context.Context) ([]catalog.DepartmentResponse, error) {
	query := `
		SELECT
			d.id, d.name,
			COUNT(j.id) AS job_count
		FROM departments d
		LEFT JOIN jobs j ON j.department_id = d.id
		GROUP BY d.id, d.name
		ORDER BY d.name
	`

	departments := []catalog.DepartmentResponse{}
	if err := r.db.SelectContext(ctx, &departments, query); err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	return departments, nil
}

// ExistsByName checks if a department exists with the given name
func (r *PostgresDepartmentRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM departments WHERE name = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, name); err != nil {
		return false, fmt.Errorf("failed to check department name: %w", err)
	}

	return exists, nil
}

// CountJobs counts the jobs posted under a department
func (r *PostgresDepartmentRepository) CountJobs(ctx context.Context, id kernel.DepartmentID) (int64, error) {
	query := `SELECT COUNT(*) FROM jobs WHERE department_id = $1`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, id.Int64()); err != nil {
		return 0, fmt.Errorf("failed to count department jobs: %w", err)
	}

	return count, nil
}

// CountWorkers counts the employment records referencing a department
func (r *PostgresDepartmentRepository) CountWorkers(ctx context.Context, id kernel.DepartmentID) (int64, error) {
	query := `SELECT COUNT(*) FROM company_workers WHERE department_id = $1`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, id.Int64()); err != nil {
		return 0, fmt.Errorf("failed to count department workers: %w", err)
	}

	return count, nil
}

// ============================================================================
// Skill Repository
// ============================================================================

// PostgresSkillRepository implements catalog.SkillRepository using PostgreSQL
type PostgresSkillRepository struct {
	db *sqlx.DB
}

// NewPostgresSkillRepository creates a new PostgreSQL skill repository
func NewPostgresSkillRepository(db *sqlx.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{
		db: db,
	}
}

// Create inserts a new skill and fills in its generated ID
func (r *PostgresSkillRepository) Create(ctx context.Context, skill *catalog.Skill) error {
	query := `INSERT INTO skills (name) VALUES ($1) RETURNING id`

	var id int64
	if err := r.db.GetContext(ctx, &id, query, skill.Name); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return catalog.ErrNameAlreadyExists().WithDetail("name", skill.Name)
		}
		return fmt.Errorf("failed to create skill: %w", err)
	}

	skill.ID = kernel.NewSkillID(id)
	return nil
}

// Update updates an existing skill
func (r *PostgresSkillRepository) Update(ctx context.Context, id kernel.SkillID, skill *catalog.Skill) error {
	query := `UPDATE skills SET name = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, skill.Name, id.Int64())
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return catalog.ErrNameAlreadyExists().WithDetail("name", skill.Name)
		}
		return fmt.Errorf("failed to update skill: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return catalog.ErrSkillNotFound()
	}

	return nil
}

// GetByID retrieves a skill by ID
func (r *PostgresSkillRepository) GetByID(ctx context.Context, id kernel.SkillID) (*catalog.Skill, error) {
	query := `SELECT id, name FROM skills WHERE id = $1`

	var skill catalog.Skill
	err := r.db.GetContext(ctx, &skill, query, id.Int64())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, catalog.ErrSkillNotFound()
		}
		return nil, fmt.Errorf("failed to get skill by id: %w", err)
	}

	return &skill, nil
}

// Delete deletes a skill. Junction rows in job_skills and cv_skills cascade
// with the skill row.
func (r *PostgresSkillRepository) Delete(ctx context.Context, id kernel.SkillID) error {
	query := `DELETE FROM skills WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id.Int64())
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return catalog.ErrSkillNotFound()
	}

	return nil
}

// List retrieves all skills
func (r *PostgresSkillRepository) List(ctx context.Context) ([]catalog.Skill, error) {
	query := `SELECT id, name FROM skills ORDER BY name`

	skills := []catalog.Skill{}
	if err := r.db.SelectContext(ctx, &skills, query); err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}

	return skills, nil
}

// ExistsByName checks if a skill exists with the given name
func (r *PostgresSkillRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM skills WHERE name = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, name); err != nil {
		return false, fmt.Errorf("failed to check skill name: %w", err)
	}

	return exists, nil
}

// CountExisting counts how many of the given ids reference a stored skill
func (r *PostgresSkillRepository) CountExisting(ctx context.Context, ids []kernel.SkillID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Int64())
	}

	query := `SELECT COUNT(*) FROM skills WHERE id = ANY($1)`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, pq.Array(raw)); err != nil {
		return 0, fmt.Errorf("failed to count skills: %w", err)
	}

	return count, nil
}
