// Package services implements the business rules on top of the
// repository layer.
package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/kmoeti/attachtrack/internal/pkg/apperrors"
	"github.com/kmoeti/attachtrack/internal/pkg/auth"
	"github.com/kmoeti/attachtrack/internal/pkg/clock"
	"github.com/kmoeti/attachtrack/internal/pkg/logger"
	"github.com/kmoeti/attachtrack/internal/pkg/validation"

	"github.com/kmoeti/attachtrack/internal/app/models"
	"github.com/kmoeti/attachtrack/internal/app/models/dto"
	"github.com/kmoeti/attachtrack/internal/app/repositories"
)

// validationError builds a field-scoped validation failure
func validationError(field, message string) error {
	return &apperrors.CustomError{
		Err:     apperrors.ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}

// AuthService handles registration, login and password changes for all
// three account types
type AuthService struct {
	students repositories.IStudentRepository
	orgs     repositories.IOrganisationRepository
	admins   repositories.IAdminRepository
	catalog  repositories.ICatalogRepository
	jwt      *auth.JWTService
	clock    clock.Clock
}

// NewAuthService creates a new auth service
func NewAuthService(
	students repositories.IStudentRepository,
	orgs repositories.IOrganisationRepository,
	admins repositories.IAdminRepository,
	catalog repositories.ICatalogRepository,
	jwt *auth.JWTService,
	clk clock.Clock,
) *AuthService {
	return &AuthService{
		students: students,
		orgs:     orgs,
		admins:   admins,
		catalog:  catalog,
		jwt:      jwt,
		clock:    clk,
	}
}

// RegisterStudent validates and creates a student account
func (s *AuthService) RegisterStudent(ctx context.Context, req dto.StudentRegisterRequest) (*models.Student, error) {
	if !validation.IsValidStudentID(req.StudentID) {
		return nil, validationError("studentId",
			"Student ID must be 9 digits starting with an intake year between 2015 and 2022")
	}
	if validation.IsBlank(req.FirstName) {
		return nil, validationError("firstName", "First name must not be blank")
	}
	if validation.IsBlank(req.LastName) {
		return nil, validationError("lastName", "Last name must not be blank")
	}
	if req.YearOfStudy < 1 || req.YearOfStudy > 6 {
		return nil, validationError("yearOfStudy", "Year of study must be between 1 and 6")
	}
	if !validation.IsValidEmail(req.Email) {
		return nil, validationError("email", "Invalid email format")
	}
	if !validation.IsValidPhone(req.ContactNo) {
		return nil, validationError("contactNo", "Invalid contact number format")
	}
	if !validation.IsStrongPassword(req.Password) {
		return nil, validationError("password",
			"Password must be at least 8 characters with a letter and a digit")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	student := &models.Student{
		StudentID:    req.StudentID,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		YearOfStudy:  req.YearOfStudy,
		Email:        req.Email,
		ContactNo:    req.ContactNo,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	logger.Info().Str("student_id", student.StudentID).Msg("Student registered")
	return student, nil
}

// RegisterOrganisation validates and creates an organisation account
func (s *AuthService) RegisterOrganisation(ctx context.Context, req dto.OrganisationRegisterRequest) (*models.Organisation, error) {
	if validation.IsBlank(req.OrgName) {
		return nil, validationError("orgName", "Organisation name must not be blank")
	}
	if validation.IsBlank(req.Street) {
		return nil, validationError("street", "Street must not be blank")
	}
	if validation.IsBlank(req.PlotNo) || strings.HasPrefix(req.PlotNo, "-") {
		return nil, validationError("plotNo", "Plot number must not be blank or negative")
	}
	if !validation.IsValidEmail(req.ContactEmail) {
		return nil, validationError("contactEmail", "Invalid email format")
	}
	if !validation.IsValidPhone(req.ContactNo) {
		return nil, validationError("contactNo", "Invalid contact number format")
	}
	if !validation.IsStrongPassword(req.Password) {
		return nil, validationError("password",
			"Password must be at least 8 characters with a letter and a digit")
	}

	industries, err := s.catalog.GetIndustriesByIDs(ctx, []int64{req.IndustryID})
	if err != nil {
		return nil, err
	}
	if len(industries) == 0 {
		return nil, apperrors.ErrIndustryNotFound
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	org := &models.Organisation{
		OrgName:      strings.TrimSpace(req.OrgName),
		IndustryID:   req.IndustryID,
		IndustryName: industries[0].Name,
		Street:       strings.TrimSpace(req.Street),
		PlotNo:       strings.TrimSpace(req.PlotNo),
		ContactNo:    req.ContactNo,
		ContactEmail: req.ContactEmail,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}
	if err := s.orgs.Create(ctx, org); err != nil {
		return nil, err
	}

	logger.Info().Int64("org_id", org.OrgID).Msg("Organisation registered")
	return org, nil
}

// RegisterAdmin validates and creates an administrator account
func (s *AuthService) RegisterAdmin(ctx context.Context, req dto.AdminRegisterRequest) (*models.Admin, error) {
	if validation.IsBlank(req.FirstName) {
		return nil, validationError("firstName", "First name must not be blank")
	}
	if validation.IsBlank(req.LastName) {
		return nil, validationError("lastName", "Last name must not be blank")
	}
	if !validation.IsValidEmail(req.Email) {
		return nil, validationError("email", "Invalid email format")
	}
	if !validation.IsStrongPassword(req.Password) {
		return nil, validationError("password",
			"Password must be at least 8 characters with a letter and a digit")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, err
	}

	logger.Info().Int64("admin_id", admin.ID).Msg("Admin registered")
	return admin, nil
}

// LoginStudent authenticates a student and issues an access token
func (s *AuthService) LoginStudent(ctx context.Context, req dto.StudentLoginRequest) (*dto.LoginResponse, error) {
	student, err := s.students.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(student.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwt.GenerateToken(student.StudentID, string(models.RoleStudent))
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		Role:      string(models.RoleStudent),
		Profile:   dto.NewStudentResponse(student),
	}, nil
}

// LoginOrganisation authenticates an organisation and issues an access token
func (s *AuthService) LoginOrganisation(ctx context.Context, req dto.OrganisationLoginRequest) (*dto.LoginResponse, error) {
	org, err := s.orgs.GetByEmail(ctx, req.ContactEmail)
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(org.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwt.GenerateToken(strconv.FormatInt(org.OrgID, 10), string(models.RoleOrganisation))
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		Role:      string(models.RoleOrganisation),
		Profile:   dto.NewOrganisationResponse(org),
	}, nil
}

// LoginAdmin authenticates an administrator, stamps last_login and issues
// an access token
func (s *AuthService) LoginAdmin(ctx context.Context, req dto.AdminLoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.admins.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(admin.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.admins.UpdateLastLogin(ctx, admin.ID); err != nil {
		logger.Warn().Err(err).Int64("admin_id", admin.ID).Msg("Failed to stamp last login")
	}

	token, expiresIn, err := s.jwt.GenerateToken(strconv.FormatInt(admin.ID, 10), string(models.RoleAdmin))
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		Role:      string(models.RoleAdmin),
		Profile: map[string]interface{}{
			"id":        admin.ID,
			"firstName": admin.FirstName,
			"lastName":  admin.LastName,
			"email":     admin.Email,
		},
	}, nil
}

// ChangeStudentPassword verifies the old credential and stores a new hash
func (s *AuthService) ChangeStudentPassword(ctx context.Context, studentID string, req dto.ChangePasswordRequest) error {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(student.PasswordHash, req.OldPassword) {
		return apperrors.ErrInvalidCredentials
	}
	if !validation.IsStrongPassword(req.NewPassword) {
		return validationError("newPassword",
			"Password must be at least 8 characters with a letter and a digit")
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.students.UpdatePassword(ctx, studentID, hash)
}

// ChangeOrganisationPassword verifies the old credential and stores a new hash
func (s *AuthService) ChangeOrganisationPassword(ctx context.Context, orgID int64, req dto.ChangePasswordRequest) error {
	org, err := s.orgs.GetByID(ctx, orgID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(org.PasswordHash, req.OldPassword) {
		return apperrors.ErrInvalidCredentials
	}
	if !validation.IsStrongPassword(req.NewPassword) {
		return validationError("newPassword",
			"Password must be at least 8 characters with a letter and a digit")
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.orgs.UpdatePassword(ctx, orgID, hash)
}
