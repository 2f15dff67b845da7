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

// StudentRepository implements IStudentRepository over PostgreSQL
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

var studentColumns = []string{
	"student_id", "first_name", "last_name", "year_of_study",
	"email", "contact_no", "password_hash", "created_at",
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.StudentID, &s.FirstName, &s.LastName, &s.YearOfStudy,
		&s.Email, &s.ContactNo, &s.PasswordHash, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func mapStudentConstraint(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, "students_pkey"):
		return apperrors.ErrStudentIDAlreadyExists
	case dberrors.IsDuplicateConstraintError(err, "students_email_key"):
		return apperrors.ErrEmailAlreadyExists
	case dberrors.IsDuplicateConstraintError(err, "students_contact_no_key"):
		return apperrors.ErrPhoneAlreadyExists
	}
	return err
}

// Create inserts a new student row
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query, args, err := psql.Insert("students").
		Columns(studentColumns...).
		Values(
			student.StudentID, student.FirstName, student.LastName, student.YearOfStudy,
			student.Email, student.ContactNo, student.PasswordHash, student.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build student insert: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return mapStudentConstraint(err)
	}
	return nil
}

// GetByID fetches a student by registration number
func (r *StudentRepository) GetByID(ctx context.Context, studentID string) (*models.Student, error) {
	query, args, err := psql.Select(studentColumns...).
		From("students").
		Where("student_id = ?", studentID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student query: %w", err)
	}

	student, err := scanStudent(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to fetch student: %w", err)
	}
	return student, nil
}

// List returns all students ordered by registration number
func (r *StudentRepository) List(ctx context.Context) ([]*models.Student, error) {
	query, args, err := psql.Select(studentColumns...).
		From("students").
		OrderBy("student_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student list query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student row: %w", err)
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

// Update rewrites the mutable profile fields
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query, args, err := psql.Update("students").
		Set("first_name", student.FirstName).
		Set("last_name", student.LastName).
		Set("year_of_study", student.YearOfStudy).
		Set("email", student.Email).
		Set("contact_no", student.ContactNo).
		Where("student_id = ?", student.StudentID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build student update: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return mapStudentConstraint(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// UpdatePassword replaces the stored credential hash
func (r *StudentRepository) UpdatePassword(ctx context.Context, studentID, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE students SET password_hash = $1 WHERE student_id = $2`,
		passwordHash, studentID)
	if err != nil {
		return fmt.Errorf("failed to update student password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete removes a student and, via cascade, its preferences and logbooks
func (r *StudentRepository) Delete(ctx context.Context, studentID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM students WHERE student_id = $1`, studentID)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
