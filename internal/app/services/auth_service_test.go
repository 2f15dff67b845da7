package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kmoeti/attachtrack/internal/pkg/apperrors"
	"github.com/kmoeti/attachtrack/internal/pkg/auth"
	"github.com/kmoeti/attachtrack/internal/pkg/clock"

	"github.com/kmoeti/attachtrack/internal/app/models/dto"
)

var testInstant = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestJWT() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "attachtrack.test",
	})
}

type authFixture struct {
	svc      *AuthService
	students *fakeStudentRepo
	orgs     *fakeOrganisationRepo
	admins   *fakeAdminRepo
	catalog  *fakeCatalogRepo
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		students: newFakeStudentRepo(),
		orgs:     newFakeOrganisationRepo(),
		admins:   newFakeAdminRepo(),
		catalog:  newFakeCatalogRepo(),
	}
	f.catalog.addIndustry(1, "Information Technology")
	f.svc = NewAuthService(f.students, f.orgs, f.admins, f.catalog,
		newTestJWT(), clock.Fixed{Instant: testInstant})
	return f
}

func validStudentRequest() dto.StudentRegisterRequest {
	return dto.StudentRegisterRequest{
		StudentID:   "202001234",
		FirstName:   "Naledi",
		LastName:    "Kgosi",
		YearOfStudy: 3,
		Email:       "naledi@univ.edu",
		ContactNo:   "+77011234567",
		Password:    "passw0rd",
	}
}

func TestRegisterStudent(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	student, err := f.svc.RegisterStudent(ctx, validStudentRequest())
	if err != nil {
		t.Fatalf("register error: %v", err)
	}
	if student.PasswordHash == "passw0rd" || student.PasswordHash == "" {
		t.Fatalf("plaintext password must not be stored")
	}
	if !student.CreatedAt.Equal(testInstant) {
		t.Fatalf("expected creation timestamp from the clock, got %v", student.CreatedAt)
	}
}

func TestRegisterStudentRejectsBadID(t *testing.T) {
	f := newAuthFixture()

	for _, id := range []string{"201412345", "202312345", "20200123", "abc"} {
		req := validStudentRequest()
		req.StudentID = id
		_, err := f.svc.RegisterStudent(context.Background(), req)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("student id %q: expected validation failure, got %v", id, err)
		}
	}
}

func TestRegisterStudentDuplicateEmail(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	if _, err := f.svc.RegisterStudent(ctx, validStudentRequest()); err != nil {
		t.Fatalf("first register error: %v", err)
	}

	second := validStudentRequest()
	second.StudentID = "202001235"
	second.ContactNo = "+77019999999"
	_, err := f.svc.RegisterStudent(ctx, second)
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("expected duplicate email error, got %v", err)
	}
}

func TestStudentLogin(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	if _, err := f.svc.RegisterStudent(ctx, validStudentRequest()); err != nil {
		t.Fatalf("register error: %v", err)
	}

	resp, err := f.svc.LoginStudent(ctx, dto.StudentLoginRequest{
		StudentID: "202001234", Password: "passw0rd",
	})
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	if resp.Token == "" || resp.Role != "STUDENT" {
		t.Fatalf("unexpected login response: %+v", resp)
	}

	_, err = f.svc.LoginStudent(ctx, dto.StudentLoginRequest{
		StudentID: "202001234", Password: "wrong-pass",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}

	_, err = f.svc.LoginStudent(ctx, dto.StudentLoginRequest{
		StudentID: "202009999", Password: "passw0rd",
	})
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("expected student not found, got %v", err)
	}
}

func TestRegisterOrganisationUnknownIndustry(t *testing.T) {
	f := newAuthFixture()

	_, err := f.svc.RegisterOrganisation(context.Background(), dto.OrganisationRegisterRequest{
		OrgName:      "Tech Plc",
		IndustryID:   99,
		Street:       "Main Mall",
		PlotNo:       "1234",
		ContactNo:    "+77010000000",
		ContactEmail: "jobs@techplc.example",
		Password:     "passw0rd",
	})
	if !errors.Is(err, apperrors.ErrIndustryNotFound) {
		t.Fatalf("expected unknown industry error, got %v", err)
	}
}

func TestAdminLoginStampsLastLogin(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.svc.RegisterAdmin(ctx, dto.AdminRegisterRequest{
		FirstName: "Ada", LastName: "Lethoko",
		Email: "admin@univ.edu", Password: "passw0rd",
	})
	if err != nil {
		t.Fatalf("register error: %v", err)
	}

	resp, err := f.svc.LoginAdmin(ctx, dto.AdminLoginRequest{
		Email: "admin@univ.edu", Password: "passw0rd",
	})
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	if resp.Role != "ADMIN" {
		t.Fatalf("expected ADMIN role, got %q", resp.Role)
	}

	stored, _ := f.admins.GetByEmail(ctx, "admin@univ.edu")
	if stored.LastLogin == nil {
		t.Fatalf("expected last_login to be stamped")
	}
}

func TestChangeStudentPassword(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	if _, err := f.svc.RegisterStudent(ctx, validStudentRequest()); err != nil {
		t.Fatalf("register error: %v", err)
	}

	err := f.svc.ChangeStudentPassword(ctx, "202001234", dto.ChangePasswordRequest{
		OldPassword: "wrong", NewPassword: "newpass1",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}

	err = f.svc.ChangeStudentPassword(ctx, "202001234", dto.ChangePasswordRequest{
		OldPassword: "passw0rd", NewPassword: "newpass1",
	})
	if err != nil {
		t.Fatalf("change password error: %v", err)
	}

	if _, err := f.svc.LoginStudent(ctx, dto.StudentLoginRequest{
		StudentID: "202001234", Password: "newpass1",
	}); err != nil {
		t.Fatalf("login with new password error: %v", err)
	}
}
