package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kmoeti/attachtrack/internal/pkg/apperrors"
	"github.com/kmoeti/attachtrack/internal/pkg/clock"

	"github.com/kmoeti/attachtrack/internal/app/models"
	"github.com/kmoeti/attachtrack/internal/app/models/dto"
)

type prefFixture struct {
	svc          *PreferenceService
	students     *fakeStudentRepo
	orgs         *fakeOrganisationRepo
	catalog      *fakeCatalogRepo
	studentPrefs *fakeStudentPrefRepo
	orgPrefs     *fakeOrgPrefRepo
}

func newPrefFixture(clk clock.Clock) *prefFixture {
	f := &prefFixture{
		students:     newFakeStudentRepo(),
		orgs:         newFakeOrganisationRepo(),
		catalog:      newFakeCatalogRepo(),
		studentPrefs: newFakeStudentPrefRepo(),
		orgPrefs:     newFakeOrgPrefRepo(),
	}
	f.students.students["202001234"] = &models.Student{
		StudentID: "202001234", FirstName: "Naledi", LastName: "Kgosi",
		YearOfStudy: 3, Email: "naledi@univ.edu", ContactNo: "+77011234567",
	}
	f.orgs.nextID = 1
	f.orgs.orgs[1] = &models.Organisation{OrgID: 1, OrgName: "Tech Plc"}
	f.catalog.addIndustry(1, "Information Technology")
	f.catalog.addIndustry(2, "Finance")
	f.catalog.addSkill(10, "Go")
	f.catalog.addSkill(11, "SQL")
	f.svc = NewPreferenceService(f.students, f.orgs, f.catalog,
		f.studentPrefs, f.orgPrefs, clk)
	return f
}

func validPrefRequest() dto.StudentPreferenceCreateRequest {
	return dto.StudentPreferenceCreateRequest{
		StudentID:     "202001234",
		PrefLocation:  "Gaborone",
		AvailableFrom: "2026-03-10",
		AvailableTo:   "2026-06-01",
		IndustryIDs:   []int64{1},
		SkillIDs:      []int64{10},
	}
}

func TestPreferenceIDSequence(t *testing.T) {
	f := newPrefFixture(clock.Fixed{Instant: testInstant})
	ctx := context.Background()

	first, err := f.svc.CreateStudentPreference(ctx, validPrefRequest())
	if err != nil {
		t.Fatalf("first create error: %v", err)
	}
	second, err := f.svc.CreateStudentPreference(ctx, validPrefRequest())
	if err != nil {
		t.Fatalf("second create error: %v", err)
	}

	if first.PrefID != "202001234_PREF001" {
		t.Fatalf("expected 202001234_PREF001, got %q", first.PrefID)
	}
	if second.PrefID != "202001234_PREF002" {
		t.Fatalf("expected 202001234_PREF002, got %q", second.PrefID)
	}
}

func TestAvailableFromDateRule(t *testing.T) {
	f := newPrefFixture(clock.Fixed{Instant: testInstant})
	ctx := context.Background()

	// today is fine
	req := validPrefRequest()
	req.AvailableFrom = "2026-03-10"
	if _, err := f.svc.CreateStudentPreference(ctx, req); err != nil {
		t.Fatalf("expected today to pass, got %v", err)
	}

	// yesterday is not
	req = validPrefRequest()
	req.AvailableFrom = "2026-03-09"
	if _, err := f.svc.CreateStudentPreference(ctx, req); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected past start to fail, got %v", err)
	}

	// end before start is not
	req = validPrefRequest()
	req.AvailableFrom = "2026-06-01"
	req.AvailableTo = "2026-03-10"
	if _, err := f.svc.CreateStudentPreference(ctx, req); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected inverted range to fail, got %v", err)
	}
}

func TestCreatePreferenceUnknownStudent(t *testing.T) {
	f := newPrefFixture(clock.Fixed{Instant: testInstant})

	req := validPrefRequest()
	req.StudentID = "202009999"
	_, err := f.svc.CreateStudentPreference(context.Background(), req)
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("expected student not found, got %v", err)
	}
}

func TestCreatePreferenceUnknownIndustryNamesID(t *testing.T) {
	f := newPrefFixture(clock.Fixed{Instant: testInstant})

	req := validPrefRequest()
	req.IndustryIDs = []int64{1, 42}
	_, err := f.svc.CreateStudentPreference(context.Background(), req)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure, got %v", err)
	}
	if !strings.Contains(err.Error(), "42") {
		t.Fatalf("expected the offending id in the message, got %q", err.Error())
	}
	if len(f.studentPrefs.prefs) != 0 {
		t.Fatalf("expected nothing persisted, found %d preferences", len(f.studentPrefs.prefs))
	}
}

func TestOrgPreferenceBadSkillPersistsNothing(t *testing.T) {
	f := newPrefFixture(clock.Fixed{Instant: testInstant})

	_, err := f.svc.CreateOrganisationPreference(context.Background(), dto.OrganisationPreferenceCreateRequest{
		OrgID:          1,
		EducationLevel: 3,
		Positions:      2,
		StartDate:      "2026-03-10",
		EndDate:        "2026-06-01",
		FieldIDs:       []int64{1},
		SkillIDs:       []int64{10, 999},
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure, got %v", err)
	}
	if !strings.Contains(err.Error(), "999") {
		t.Fatalf("expected the offending id in the message, got %q", err.Error())
	}
	if len(f.orgPrefs.prefs) != 0 {
		t.Fatalf("expected nothing persisted, found %d preferences", len(f.orgPrefs.prefs))
	}
}

func TestOrgPreferenceDenormalizesFieldNames(t *testing.T) {
	f := newPrefFixture(clock.Fixed{Instant: testInstant})

	pref, err := f.svc.CreateOrganisationPreference(context.Background(), dto.OrganisationPreferenceCreateRequest{
		OrgID:          1,
		EducationLevel: 3,
		Positions:      2,
		StartDate:      "2026-03-10",
		EndDate:        "2026-06-01",
		FieldIDs:       []int64{2, 1},
		SkillIDs:       []int64{10},
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if len(pref.PreferredFields) != 2 {
		t.Fatalf("expected 2 fields, got %v", pref.PreferredFields)
	}
	for _, name := range pref.PreferredFields {
		if name != "Finance" && name != "Information Technology" {
			t.Fatalf("unexpected field name %q", name)
		}
	}
}

func TestUpdateKeepsUnchangedStartDate(t *testing.T) {
	// create while the start date is still in the future
	early := newPrefFixture(clock.Fixed{Instant: testInstant})
	ctx := context.Background()

	pref, err := early.svc.CreateStudentPreference(ctx, validPrefRequest())
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	// a month later the stored start date lies in the past; updating only
	// the location must still succeed
	later := clock.Fixed{Instant: testInstant.AddDate(0, 1, 0)}
	svc := NewPreferenceService(early.students, early.orgs, early.catalog,
		early.studentPrefs, early.orgPrefs, later)

	location := "Francistown"
	updated, err := svc.UpdateStudentPreference(ctx, pref.PrefID, dto.StudentPreferenceUpdateRequest{
		PrefLocation: &location,
	})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if updated.PrefLocation != "Francistown" {
		t.Fatalf("expected updated location, got %q", updated.PrefLocation)
	}

	// but moving the start date itself into the past is rejected
	past := "2026-03-01"
	_, err = svc.UpdateStudentPreference(ctx, pref.PrefID, dto.StudentPreferenceUpdateRequest{
		AvailableFrom: &past,
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected past start to fail, got %v", err)
	}
}

func TestListStudentPreferences(t *testing.T) {
	f := newPrefFixture(clock.Fixed{Instant: testInstant})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := f.svc.CreateStudentPreference(ctx, validPrefRequest()); err != nil {
			t.Fatalf("create error: %v", err)
		}
	}

	prefs, err := f.svc.ListStudentPreferences(ctx, "202001234")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(prefs) != 3 {
		t.Fatalf("expected 3 preferences, got %d", len(prefs))
	}
	for i := 1; i < len(prefs); i++ {
		if prefs[i-1].PrefID >= prefs[i].PrefID {
			t.Fatalf("expected ascending ids, got %q before %q", prefs[i-1].PrefID, prefs[i].PrefID)
		}
	}

	if _, err := f.svc.ListStudentPreferences(ctx, "202009999"); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("expected student not found, got %v", err)
	}
}
