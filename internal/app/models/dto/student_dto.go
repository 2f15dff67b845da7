package dto

import (
	"time"

	"github.com/kmoeti/attachtrack/internal/app/models"
)

// StudentResponse is the external representation of a student
type StudentResponse struct {
	StudentID   string    `json:"studentId"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	YearOfStudy int       `json:"yearOfStudy"`
	Email       string    `json:"email"`
	ContactNo   string    `json:"contactNo"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewStudentResponse maps a student model to its response form
func NewStudentResponse(s *models.Student) StudentResponse {
	return StudentResponse{
		StudentID:   s.StudentID,
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		YearOfStudy: s.YearOfStudy,
		Email:       s.Email,
		ContactNo:   s.ContactNo,
		CreatedAt:   s.CreatedAt,
	}
}

// StudentUpdateRequest carries a partial student profile update
type StudentUpdateRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	YearOfStudy *int    `json:"yearOfStudy"`
	Email       *string `json:"email"`
	ContactNo   *string `json:"contactNo"`
}
