package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrPermissionDenied   = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Duplicate-key errors surfaced on registration
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrPhoneAlreadyExists   = errors.New("contact number already registered")
	ErrDuplicateKey         = errors.New("duplicate key")
	ErrOrgNameAlreadyExists = errors.New("organisation already registered")
)

// Student errors
var (
	ErrStudentNotFound        = errors.New("student not found")
	ErrStudentIDAlreadyExists = errors.New("student ID already registered")
	ErrInvalidStudentID       = errors.New("invalid student ID format")
)

// Organisation errors
var (
	ErrOrganisationNotFound = errors.New("organisation not found")
)

// Admin errors
var (
	ErrAdminNotFound = errors.New("admin not found")
)

// Catalog errors
var (
	ErrIndustryNotFound = errors.New("industry not found")
	ErrSkillNotFound    = errors.New("skill not found")
)

// Preference and match errors
var (
	ErrPreferenceNotFound = errors.New("preference not found")
)

// Logbook errors
var (
	ErrLogbookNotFound = errors.New("logbook not found")
)

// NewNotFoundError creates a custom not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewValidationError creates a custom validation error with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewDuplicateKeyError creates a custom duplicate-key error with a message
func NewDuplicateKeyError(message string) error {
	return &CustomError{
		Err:     ErrDuplicateKey,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithField attaches the offending field name
func (e *CustomError) WithField(field string) *CustomError {
	e.Field = field
	return e
}
