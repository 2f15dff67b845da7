package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kmoeti/attachtrack/internal/pkg/apperrors"
	"github.com/kmoeti/attachtrack/internal/pkg/dberrors"

	"github.com/kmoeti/attachtrack/internal/app/models"
)

// AdminRepository implements IAdminRepository over PostgreSQL
type AdminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

// Create inserts a new administrator row
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query, args, err := psql.Insert("admins").
		Columns("first_name", "last_name", "email", "password_hash", "created_at").
		Values(admin.FirstName, admin.LastName, admin.Email, admin.PasswordHash, admin.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build admin insert: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&admin.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "admins_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

// GetByEmail fetches an administrator by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query, args, err := psql.Select("id", "first_name", "last_name", "email",
		"password_hash", "created_at", "last_login").
		From("admins").
		Where("email = ?", email).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build admin query: %w", err)
	}

	var a models.Admin
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Email,
		&a.PasswordHash, &a.CreatedAt, &a.LastLogin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to fetch admin: %w", err)
	}
	return &a, nil
}

// UpdateLastLogin stamps the admin's last successful login
func (r *AdminRepository) UpdateLastLogin(ctx context.Context, adminID int64) error {
	tag, err := r.pool.Exec(ctx, `UPDATE admins SET last_login = now() WHERE id = $1`, adminID)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}
	return nil
}
