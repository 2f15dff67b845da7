package services

import (
	"context"
	"errors"
	"testing"

	"github.com/kmoeti/attachtrack/internal/pkg/apperrors"
	"github.com/kmoeti/attachtrack/internal/pkg/clock"

	"github.com/kmoeti/attachtrack/internal/app/models"
	"github.com/kmoeti/attachtrack/internal/app/models/dto"
)

type matchFixture struct {
	svc     *MatchService
	prefs   *fakeStudentPrefRepo
	orgs    *fakeOrganisationRepo
	matches *fakeMatchRepo
}

func newMatchFixture() *matchFixture {
	f := &matchFixture{
		prefs:   newFakeStudentPrefRepo(),
		orgs:    newFakeOrganisationRepo(),
		matches: newFakeMatchRepo(),
	}
	f.prefs.prefs["202001234_PREF001"] = &models.StudentPreference{
		PrefID: "202001234_PREF001", StudentID: "202001234",
	}
	f.orgs.orgs[1] = &models.Organisation{OrgID: 1, OrgName: "Tech Plc"}
	f.orgs.orgs[2] = &models.Organisation{OrgID: 2, OrgName: "Agri Co"}
	f.orgs.nextID = 2
	f.svc = NewMatchService(f.prefs, f.orgs, f.matches, clock.Fixed{Instant: testInstant})
	return f
}

func TestManualMatchCreateThenReplace(t *testing.T) {
	f := newMatchFixture()
	ctx := context.Background()

	match, created, err := f.svc.ManualMatch(ctx, dto.ManualMatchRequest{
		StudentPrefID: "202001234_PREF001", OrgID: 1, AdminNote: "first pick",
	})
	if err != nil {
		t.Fatalf("match error: %v", err)
	}
	if !created {
		t.Fatalf("expected first match to be created")
	}

	rematch, created, err := f.svc.ManualMatch(ctx, dto.ManualMatchRequest{
		StudentPrefID: "202001234_PREF001", OrgID: 2, AdminNote: "reassigned",
	})
	if err != nil {
		t.Fatalf("re-match error: %v", err)
	}
	if created {
		t.Fatalf("expected re-match to update, not create")
	}
	if rematch.ID != match.ID {
		t.Fatalf("expected the same match row, got %d and %d", match.ID, rematch.ID)
	}

	if len(f.matches.byPref) != 1 {
		t.Fatalf("expected exactly one match row, got %d", len(f.matches.byPref))
	}
	stored := f.matches.byPref["202001234_PREF001"]
	if stored.OrgID != 2 || stored.AdminNote != "reassigned" {
		t.Fatalf("expected latest assignment to win, got %+v", stored)
	}
}

func TestManualMatchUnknownReferences(t *testing.T) {
	f := newMatchFixture()
	ctx := context.Background()

	_, _, err := f.svc.ManualMatch(ctx, dto.ManualMatchRequest{
		StudentPrefID: "202001234_PREF099", OrgID: 1,
	})
	if !errors.Is(err, apperrors.ErrPreferenceNotFound) {
		t.Fatalf("expected preference not found, got %v", err)
	}

	_, _, err = f.svc.ManualMatch(ctx, dto.ManualMatchRequest{
		StudentPrefID: "202001234_PREF001", OrgID: 99,
	})
	if !errors.Is(err, apperrors.ErrOrganisationNotFound) {
		t.Fatalf("expected organisation not found, got %v", err)
	}
	if len(f.matches.byPref) != 0 {
		t.Fatalf("expected no match recorded, got %d", len(f.matches.byPref))
	}
}
