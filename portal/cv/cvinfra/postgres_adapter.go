package cvinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/cv"
)

// PostgresCVRepository implements cv.Repository using PostgreSQL
type PostgresCVRepository struct {
	db *sqlx.DB
}

// NewPostgresCVRepository creates a new PostgreSQL CV repository
func NewPostgresCVRepository(db *sqlx.DB) *PostgresCVRepository {
	return &PostgresCVRepository{
		db: db,
	}
}

type cvRow struct {
	ID              int64          `db:"id"`
	UserID          int64          `db:"user_id"`
	Summary         *string        `db:"summary"`
	ExperienceYears *int           `db:"experience_years"`
	EducationLevel  *string        `db:"education_level"`
	SkillsText      *string        `db:"skills_text"`
	CreatedAt       time.Time      `db:"created_at"`
	Skills          pq.StringArray `db:"skills"`
}

func (m *cvRow) toResponse() cv.CVResponse {
	return cv.CVResponse{
		ID:              kernel.NewCVID(m.ID),
		UserID:          kernel.NewUserID(m.UserID),
		Summary:         m.Summary,
		ExperienceYears: m.ExperienceYears,
		EducationLevel:  m.EducationLevel,
		SkillsText:      m.SkillsText,
		CreatedAt:       m.CreatedAt,
		Skills:          []string(m.Skills),
	}
}

const cvResponseQuery = `
	SELECT
		v.id, v.user_id, v.summary, v.experience_years, v.education_level,
		v.skills_text, v.created_at,
		COALESCE(array_agg(s.name ORDER BY s.name) FILTER (WHERE s.name IS NOT NULL), '{}') AS skills
	FROM cvs v
	LEFT JOIN cv_skills cs ON cs.cv_id = v.id
	LEFT JOIN skills s ON s.id = cs.skill_id
	%s
	GROUP BY v.id
	%s
`

// CreateWithSkills inserts the CV and its skill junction rows in one
// transaction
func (r *PostgresCVRepository) CreateWithSkills(ctx context.Context, c *cv.CV, skillIDs []kernel.SkillID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO cvs (user_id, summary, experience_years, education_level, skills_text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err = tx.GetContext(ctx, &id, query,
		c.UserID.Int64(), c.Summary, c.ExperienceYears, c.EducationLevel, c.SkillsText, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create cv: %w", err)
	}

	if err := insertSkills(ctx, tx, id, skillIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cv creation: %w", err)
	}

	c.ID = kernel.NewCVID(id)
	return nil
}

// UpdateWithSkills updates the CV and replaces its skill junction rows in one
// transaction
func (r *PostgresCVRepository) UpdateWithSkills(ctx context.Context, id kernel.CVID, c *cv.CV, skillIDs []kernel.SkillID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE cvs SET
			summary = $1,
			experience_years = $2,
			education_level = $3,
			skills_text = $4
		WHERE id = $5
	`

	result, err := tx.ExecContext(ctx, query,
		c.Summary, c.ExperienceYears, c.EducationLevel, c.SkillsText, id.Int64(),
	)
	if err != nil {
		return fmt.Errorf("failed to update cv: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return cv.ErrCVNotFound()
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM cv_skills WHERE cv_id = $1`, id.Int64()); err != nil {
		return fmt.Errorf("failed to clear cv skills: %w", err)
	}

	if err := insertSkills(ctx, tx, id.Int64(), skillIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cv update: %w", err)
	}

	return nil
}

// insertSkills writes the junction rows inside the caller's transaction
func insertSkills(ctx context.Context, tx *sqlx.Tx, cvID int64, skillIDs []kernel.SkillID) error {
	for _, skillID := range skillIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO cv_skills (cv_id, skill_id) VALUES ($1, $2)`,
			cvID, skillID.Int64(),
		)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				switch pqErr.Code {
				case "23503": // foreign_key_violation
					return cv.ErrInvalidSkillSet().WithDetail("skill_id", skillID.String())
				case "23505": // unique_violation
					return cv.ErrInvalidSkillSet().WithDetail("duplicate_skill_id", skillID.String())
				}
			}
			return fmt.Errorf("failed to attach skill: %w", err)
		}
	}
	return nil
}

// GetByID retrieves a CV by ID
func (r *PostgresCVRepository) GetByID(ctx context.Context, id kernel.CVID) (*cv.CV, error) {
	query := `
		SELECT id, user_id, summary, experience_years, education_level, skills_text, created_at
		FROM cvs
		WHERE id = $1
	`

	var c cv.CV
	err := r.db.GetContext(ctx, &c, query, id.Int64())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, cv.ErrCVNotFound()
		}
		return nil, fmt.Errorf("failed to get cv by id: %w", err)
	}

	return &c, nil
}

// GetResponseByID retrieves a CV with its tagged skill names
func (r *PostgresCVRepository) GetResponseByID(ctx context.Context, id kernel.CVID) (*cv.CVResponse, error) {
	query := fmt.Sprintf(cvResponseQuery, "WHERE v.id = $1", "")

	var row cvRow
	err := r.db.GetContext(ctx, &row, query, id.Int64())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, cv.ErrCVNotFound()
		}
		return nil, fmt.Errorf("failed to get cv response: %w", err)
	}

	resp := row.toResponse()
	return &resp, nil
}

// Delete deletes a CV by ID. Skill junction rows cascade with the CV.
func (r *PostgresCVRepository) Delete(ctx context.Context, id kernel.CVID) error {
	query := `DELETE FROM cvs WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id.Int64())
	if err != nil {
		return fmt.Errorf("failed to delete cv: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return cv.ErrCVNotFound()
	}

	return nil
}

// ListByUser retrieves all CVs of a user, newest first
func (r *PostgresCVRepository) ListByUser(ctx context.Context, userID kernel.UserID) ([]cv.CVResponse, error) {
	query := fmt.Sprintf(cvResponseQuery, "WHERE v.user_id = $1", "ORDER BY v.created_at DESC")

	var rows []cvRow
	if err := r.db.SelectContext(ctx, &rows, query, userID.Int64()); err != nil {
		return nil, fmt.Errorf("failed to list cvs: %w", err)
	}

	responses := make([]cv.CVResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, rows[i].toResponse())
	}

	return responses, nil
}

// GetLatestResponseByUser returns the user's most recently created CV
func (r *PostgresCVRepository) GetLatestResponseByUser(ctx context.Context, userID kernel.UserID) (*cv.CVResponse, error) {
	query := fmt.Sprintf(cvResponseQuery, "WHERE v.user_id = $1", "ORDER BY v.created_at DESC LIMIT 1")

	var row cvRow
	err := r.db.GetContext(ctx, &row, query, userID.Int64())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, cv.ErrCVNotFound()
		}
		return nil, fmt.Errorf("failed to get latest cv: %w", err)
	}

	resp := row.toResponse()
	return &resp, nil
}
