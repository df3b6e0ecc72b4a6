package seed

import (
	"context"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/openhire/jobportal/pkg/iam/auth"
	"github.com/openhire/jobportal/pkg/logx"
)

// Seeder populates reference data and guarantees a default admin account
// exists on first boot
type Seeder struct {
	db        *sqlx.DB
	passwords auth.PasswordService
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *sqlx.DB, passwords auth.PasswordService) *Seeder {
	return &Seeder{db: db, passwords: passwords}
}

var sectorNames = []string{
	"Technology",
	"Finance",
	"Healthcare",
	"Education",
	"Manufacturing",
	"Retail",
	"Construction",
	"Hospitality",
}

var departmentNames = []string{
	"Engineering",
	"Sales",
	"Marketing",
	"Human Resources",
	"Finance",
	"Operations",
	"Customer Support",
	"Legal",
}

var skillNames = []string{
	"Go", "Python", "Java", "C#", "JavaScript", "TypeScript", "SQL",
	"PostgreSQL", "Redis", "Docker", "Kubernetes", "AWS", "Linux",
	"React", "Angular", "Vue", "Node.js", "REST API Design", "gRPC",
	"Project Management", "Agile", "Scrum", "Data Analysis",
	"Machine Learning", "Accounting", "Recruiting", "Copywriting",
	"Negotiation", "Customer Service", "Public Speaking",
}

// Run inserts the reference catalogs and the default admin. Every insert is
// idempotent so the seeder is safe to run on each boot.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedNames(ctx, "sectors", sectorNames); err != nil {
		return err
	}
	if err := s.seedNames(ctx, "departments", departmentNames); err != nil {
		return err
	}
	if err := s.seedNames(ctx, "skills", skillNames); err != nil {
		return err
	}
	return s.seedAdmin(ctx)
}

func (s *Seeder) seedNames(ctx context.Context, table string, names []string) error {
	query := `INSERT INTO ` + table + ` (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`
	for _, name := range names {
		if _, err := s.db.ExecContext(ctx, query, name); err != nil {
			return err
		}
	}
	return nil
}

// seedAdmin creates the bootstrap admin when no admin account exists yet.
// The platform refuses to delete or demote its last admin, so this account
// anchors that invariant from day one.
func (s *Seeder) seedAdmin(ctx context.Context) error {
	var admins int64
	if err := s.db.GetContext(ctx, &admins, `SELECT COUNT(*) FROM users WHERE role = 'Admin'`); err != nil {
		return err
	}
	if admins > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@jobportal.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "ChangeMe123!"
		logx.Warn("ADMIN_PASSWORD is not set, seeding default admin with a well-known password")
	}

	hash, err := s.passwords.HashPassword(password)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (name, surname, email, password_hash, role, created_at)
		VALUES ('Platform', 'Admin', $1, $2, 'Admin', NOW())
		ON CONFLICT (email) DO NOTHING`
	if _, err := s.db.ExecContext(ctx, query, email, hash); err != nil {
		return err
	}

	logx.Infof("Seeded default admin account %s", email)
	return nil
}
