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

type logbookFixture struct {
	svc      *LogbookService
	students *fakeStudentRepo
	orgs     *fakeOrganisationRepo
	logbooks *fakeLogbookRepo
}

func newLogbookFixture() *logbookFixture {
	f := &logbookFixture{
		students: newFakeStudentRepo(),
		orgs:     newFakeOrganisationRepo(),
		logbooks: newFakeLogbookRepo(),
	}
	f.students.students["202001234"] = &models.Student{StudentID: "202001234"}
	f.orgs.orgs[1] = &models.Organisation{OrgID: 1, OrgName: "Tech Plc"}
	f.orgs.nextID = 1
	f.svc = NewLogbookService(f.students, f.orgs, f.logbooks, clock.Fixed{Instant: testInstant})
	return f
}

func validLogRequest() dto.LogbookSubmitRequest {
	return dto.LogbookSubmitRequest{
		StudentID: "202001234",
		OrgID:     1,
		WeekNo:    3,
		Entry:     "Worked on the deployment pipeline and weekly reporting.",
	}
}

func TestSubmitLogbook(t *testing.T) {
	f := newLogbookFixture()

	log, err := f.svc.Submit(context.Background(), validLogRequest())
	if err != nil {
		t.Fatalf("submit error: %v", err)
	}
	if len(log.LogID) != 8 {
		t.Fatalf("expected an 8-character id, got %q", log.LogID)
	}
	if log.Status != models.LogbookPending {
		t.Fatalf("expected pending status, got %q", log.Status)
	}
	if !log.SubmittedAt.Equal(testInstant) {
		t.Fatalf("expected submission timestamp from the clock, got %v", log.SubmittedAt)
	}
}

func TestSubmitLogbookValidation(t *testing.T) {
	f := newLogbookFixture()
	ctx := context.Background()

	req := validLogRequest()
	req.WeekNo = 11
	if _, err := f.svc.Submit(ctx, req); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected week 11 to fail, got %v", err)
	}

	req = validLogRequest()
	req.WeekNo = 0
	if _, err := f.svc.Submit(ctx, req); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected week 0 to fail, got %v", err)
	}

	req = validLogRequest()
	req.Entry = "   \t  "
	if _, err := f.svc.Submit(ctx, req); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected blank entry to fail, got %v", err)
	}

	req = validLogRequest()
	req.Entry = strings.Repeat("word ", 301)
	if _, err := f.svc.Submit(ctx, req); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected 301-word entry to fail, got %v", err)
	}

	// exactly 300 words is allowed
	req = validLogRequest()
	req.Entry = strings.TrimSpace(strings.Repeat("word ", 300))
	if _, err := f.svc.Submit(ctx, req); err != nil {
		t.Fatalf("expected 300-word entry to pass, got %v", err)
	}

	req = validLogRequest()
	req.StudentID = "202009999"
	if _, err := f.svc.Submit(ctx, req); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("expected student not found, got %v", err)
	}
}

func TestSubmitRetriesOnIDCollision(t *testing.T) {
	f := newLogbookFixture()
	f.logbooks.collisions = 2

	log, err := f.svc.Submit(context.Background(), validLogRequest())
	if err != nil {
		t.Fatalf("expected submit to survive collisions, got %v", err)
	}
	if log.LogID == "" {
		t.Fatalf("expected an id after retries")
	}

	f.logbooks.collisions = maxIDRetries
	if _, err := f.svc.Submit(context.Background(), validLogRequest()); err == nil {
		t.Fatalf("expected submit to give up after %d collisions", maxIDRetries)
	}
}

func TestMarkViewedIdempotent(t *testing.T) {
	f := newLogbookFixture()
	ctx := context.Background()

	log, err := f.svc.Submit(ctx, validLogRequest())
	if err != nil {
		t.Fatalf("submit error: %v", err)
	}

	first, err := f.svc.MarkViewed(ctx, log.LogID)
	if err != nil {
		t.Fatalf("mark viewed error: %v", err)
	}
	if first.Status != models.LogbookViewed || first.ViewedAt == nil {
		t.Fatalf("expected viewed status with timestamp, got %+v", first)
	}
	if !first.ViewedAt.Equal(testInstant) {
		t.Fatalf("expected viewed timestamp from the clock, got %v", first.ViewedAt)
	}

	// a later clock on the second call must not overwrite the timestamp
	f.svc.clock = clock.Fixed{Instant: testInstant.AddDate(0, 0, 7)}
	second, err := f.svc.MarkViewed(ctx, log.LogID)
	if err != nil {
		t.Fatalf("second mark viewed error: %v", err)
	}
	if !second.ViewedAt.Equal(*first.ViewedAt) {
		t.Fatalf("expected the first viewed timestamp to be preserved, got %v", second.ViewedAt)
	}

	if _, err := f.svc.MarkViewed(ctx, "NOSUCHID"); !errors.Is(err, apperrors.ErrLogbookNotFound) {
		t.Fatalf("expected logbook not found, got %v", err)
	}
}

func TestListForOrganisationNewestFirst(t *testing.T) {
	f := newLogbookFixture()
	ctx := context.Background()

	base := testInstant
	for i := 0; i < 3; i++ {
		f.svc.clock = clock.Fixed{Instant: base.AddDate(0, 0, i)}
		req := validLogRequest()
		req.WeekNo = i + 1
		if _, err := f.svc.Submit(ctx, req); err != nil {
			t.Fatalf("submit error: %v", err)
		}
	}

	logs, err := f.svc.ListForOrganisation(ctx, 1)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(logs))
	}
	for i := 1; i < len(logs); i++ {
		if logs[i-1].SubmittedAt.Before(logs[i].SubmittedAt) {
			t.Fatalf("expected newest first ordering")
		}
	}
}
