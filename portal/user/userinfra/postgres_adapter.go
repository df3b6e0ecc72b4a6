package userinfra

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/openhire/jobportal/pkg/errx"
	"github.com/openhire/jobportal/pkg/kernel"
	"github.com/openhire/jobportal/portal/user"
)

// PostgresUserRepository implements user.Repository backed by Postgres
type PostgresUserRepository struct {
	db *sqlx.DB
}

// NewPostgresUserRepository creates a new instance of the repository
func NewPostgresUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `u.id, u.company_id, u.name, u.surname, u.email, u.phone, u.password_hash, u.role, u.created_at`

func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (company_id, name, surname, email, phone, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var companyID interface{}
	if u.CompanyID != nil {
		companyID = u.CompanyID.Int64()
	}

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		companyID, u.Name, u.Surname, string(u.Email), u.Phone,
		u.PasswordHash, string(u.Role), u.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return user.ErrEmailAlreadyExists().WithDetail("email", string(u.Email))
		}
		return errx.Wrap(err, "failed to create user", errx.TypeInternal)
	}

	u.ID = kernel.NewUserID(id)
	return nil
}

func (r *PostgresUserRepository) Update(ctx context.Context, id kernel.UserID, u *user.User) error {
	query := `
		UPDATE users
		SET company_id = $1, name = $2, surname = $3, phone = $4
		WHERE id = $5`

	var companyID interface{}
	if u.CompanyID != nil {
		companyID = u.CompanyID.Int64()
	}

	result, err := r.db.ExecContext(ctx, query, companyID, u.Name, u.Surname, u.Phone, id.Int64())
	if err != nil {
		return errx.Wrap(err, "failed to update user", errx.TypeInternal)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to check update result", errx.TypeInternal)
	}
	if rows == 0 {
		return user.ErrUserNotFound().WithDetail("user_id", id.String())
	}

	return nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id kernel.UserID) (*user.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users u WHERE u.id = $1`, userColumns)

	var u user.User
	if err := r.db.GetContext(ctx, &u, query, id.Int64()); err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrUserNotFound().WithDetail("user_id", id.String())
		}
		return nil, errx.Wrap(err, "failed to get user", errx.TypeInternal)
	}

	return &u, nil
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users u WHERE u.email = $1`, userColumns)

	var u user.User
	if err := r.db.GetContext(ctx, &u, query, string(email)); err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrUserNotFound().WithDetail("email", string(email))
		}
		return nil, errx.Wrap(err, "failed to get user by email", errx.TypeInternal)
	}

	return &u, nil
}

func (r *PostgresUserRepository) Delete(ctx context.Context, id kernel.UserID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id.Int64())
	if err != nil {
		return errx.Wrap(err, "failed to delete user", errx.TypeInternal)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to check delete result", errx.TypeInternal)
	}
	if rows == 0 {
		return user.ErrUserNotFound().WithDetail("user_id", id.String())
	}

	return nil
}

func (r *PostgresUserRepository) List(ctx context.Context, req user.ListUsersRequest) (*kernel.Paginated[user.UserResponse], error) {
	baseQuery := `
		FROM users u
		LEFT JOIN companies c ON c.id = u.company_id`

	whereClause := ""
	args := []interface{}{}
	argCount := 0

	if req.Search != "" {
		argCount++
		whereClause = fmt.Sprintf(" WHERE (u.name ILIKE $%d OR u.surname ILIKE $%d OR u.email ILIKE $%d)", argCount, argCount, argCount)
		args = append(args, "%"+req.Search+"%")
	}

	if req.Role != nil {
		argCount++
		if whereClause == "" {
			whereClause = fmt.Sprintf(" WHERE u.role = $%d", argCount)
		} else {
			whereClause += fmt.Sprintf(" AND u.role = $%d", argCount)
		}
		args = append(args, string(*req.Role))
	}

	countQuery := "SELECT COUNT(*) " + baseQuery + whereClause
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, errx.Wrap(err, "failed to count users", errx.TypeInternal)
	}

	selectQuery := fmt.Sprintf(`
		SELECT u.id, u.company_id, u.name, u.surname, u.email, u.phone, u.role, u.created_at,
		       c.name AS company_name
		%s%s
		ORDER BY u.created_at DESC
		LIMIT $%d OFFSET $%d`, baseQuery, whereClause, argCount+1, argCount+2)
	args = append(args, req.Pagination.PageSize, req.Pagination.Offset())

	items := []user.UserResponse{}
	if err := r.db.SelectContext(ctx, &items, selectQuery, args...); err != nil {
		return nil, errx.Wrap(err, "failed to list users", errx.TypeInternal)
	}

	return &kernel.Paginated[user.UserResponse]{
		Items: items,
		Page:  kernel.NewPage(req.Pagination, total),
		Empty: len(items) == 0,
	}, nil
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	if err := r.db.GetContext(ctx, &exists, query, string(email)); err != nil {
		return false, errx.Wrap(err, "failed to check email", errx.TypeInternal)
	}
	return exists, nil
}

func (r *PostgresUserRepository) CountByRole(ctx context.Context, role user.Role) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM users WHERE role = $1`
	if err := r.db.GetContext(ctx, &count, query, string(role)); err != nil {
		return 0, errx.Wrap(err, "failed to count users by role", errx.TypeInternal)
	}
	return count, nil
}

func (r *PostgresUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, errx.Wrap(err, "failed to count users", errx.TypeInternal)
	}
	return count, nil
}

func (r *PostgresUserRepository) UpdateRole(ctx context.Context, id kernel.UserID, role user.Role) error {
	result, err := r.db.ExecContext(ctx, `UPDATE users SET role = $1 WHERE id = $2`, string(role), id.Int64())
	if err != nil {
		return errx.Wrap(err, "failed to update role", errx.TypeInternal)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to check update result", errx.TypeInternal)
	}
	if rows == 0 {
		return user.ErrUserNotFound().WithDetail("user_id", id.String())
	}

	return nil
}

func (r *PostgresUserRepository) UpdatePasswordHash(ctx context.Context, id kernel.UserID, hash string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE users SET password_hash = $1 WHERE id = $2`, hash, id.Int64())
	if err != nil {
		return errx.Wrap(err, "failed to update password", errx.TypeInternal)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to check update result", errx.TypeInternal)
	}
	if rows == 0 {
		return user.ErrUserNotFound().WithDetail("user_id", id.String())
	}

	return nil
}
