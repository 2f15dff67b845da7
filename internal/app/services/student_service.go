package services

import (
	"context"

	"github.com/kmoeti/attachtrack/internal/pkg/validation"

	"github.com/kmoeti/attachtrack/internal/app/models"
	"github.com/kmoeti/attachtrack/internal/app/models/dto"
	"github.com/kmoeti/attachtrack/internal/app/repositories"
)

// StudentService manages student profiles
type StudentService struct {
	students repositories.IStudentRepository
}

// NewStudentService creates a new student service
func NewStudentService(students repositories.IStudentRepository) *StudentService {
	return &StudentService{students: students}
}

// Get returns one student profile
func (s *StudentService) Get(ctx context.Context, studentID string) (*models.Student, error) {
	return s.students.GetByID(ctx, studentID)
}

// List returns all students
func (s *StudentService) List(ctx context.Context) ([]*models.Student, error) {
	return s.students.List(ctx)
}

// Update merges the provided fields into the profile and re-validates them
func (s *StudentService) Update(ctx context.Context, studentID string, req dto.StudentUpdateRequest) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		if validation.IsBlank(*req.FirstName) {
			return nil, validationError("firstName", "First name must not be blank")
		}
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		if validation.IsBlank(*req.LastName) {
			return nil, validationError("lastName", "Last name must not be blank")
		}
		student.LastName = *req.LastName
	}
	if req.YearOfStudy != nil {
		if *req.YearOfStudy < 1 || *req.YearOfStudy > 6 {
			return nil, validationError("yearOfStudy", "Year of study must be between 1 and 6")
		}
		student.YearOfStudy = *req.YearOfStudy
	}
	if req.Email != nil {
		if !validation.IsValidEmail(*req.Email) {
			return nil, validationError("email", "Invalid email format")
		}
		student.Email = *req.Email
	}
	if req.ContactNo != nil {
		if !validation.IsValidPhone(*req.ContactNo) {
			return nil, validationError("contactNo", "Invalid contact number format")
		}
		student.ContactNo = *req.ContactNo
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Delete removes a student account
func (s *StudentService) Delete(ctx context.Context, studentID string) error {
	return s.students.Delete(ctx, studentID)
}
