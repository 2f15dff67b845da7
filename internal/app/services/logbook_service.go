package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kmoeti/attachtrack/internal/pkg/apperrors"
	"github.com/kmoeti/attachtrack/internal/pkg/clock"
	"github.com/kmoeti/attachtrack/internal/pkg/codes"
	"github.com/kmoeti/attachtrack/internal/pkg/logger"
	"github.com/kmoeti/attachtrack/internal/pkg/validation"

	"github.com/kmoeti/attachtrack/internal/app/models"
	"github.com/kmoeti/attachtrack/internal/app/models/dto"
	"github.com/kmoeti/attachtrack/internal/app/repositories"
)

// Logbook limits
const (
	MinWeekNo    = 1
	MaxWeekNo    = 10
	MaxLogWords  = 300
	maxIDRetries = 5
)

// LogbookService manages weekly attachment reports
type LogbookService struct {
	students repositories.IStudentRepository
	orgs     repositories.IOrganisationRepository
	logbooks repositories.ILogbookRepository
	clock    clock.Clock
}

// NewLogbookService creates a new logbook service
func NewLogbookService(
	students repositories.IStudentRepository,
	orgs repositories.IOrganisationRepository,
	logbooks repositories.ILogbookRepository,
	clk clock.Clock,
) *LogbookService {
	return &LogbookService{students: students, orgs: orgs, logbooks: logbooks, clock: clk}
}

// Submit validates and stores one weekly report. The random log id is
// regenerated on a primary-key collision, bounded to a handful of attempts.
func (s *LogbookService) Submit(ctx context.Context, req dto.LogbookSubmitRequest) (*models.Logbook, error) {
	if _, err := s.students.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}
	if _, err := s.orgs.GetByID(ctx, req.OrgID); err != nil {
		return nil, err
	}
	if req.WeekNo < MinWeekNo || req.WeekNo > MaxWeekNo {
		return nil, validationError("weekNo",
			fmt.Sprintf("Week number must be between %d and %d", MinWeekNo, MaxWeekNo))
	}
	if validation.IsBlank(req.Entry) {
		return nil, validationError("entry", "Log entry must not be blank")
	}
	if validation.WordCount(req.Entry) > MaxLogWords {
		return nil, validationError("entry",
			fmt.Sprintf("Log entry must not exceed %d words", MaxLogWords))
	}

	log := &models.Logbook{
		StudentID:   req.StudentID,
		OrgID:       req.OrgID,
		WeekNo:      req.WeekNo,
		Entry:       req.Entry,
		SubmittedAt: s.clock.Now(),
		Status:      models.LogbookPending,
	}

	for attempt := 0; attempt < maxIDRetries; attempt++ {
		id, err := codes.Generate()
		if err != nil {
			return nil, err
		}
		log.LogID = id

		err = s.logbooks.Create(ctx, log)
		if err == nil {
			logger.Info().Str("log_id", log.LogID).Int("week", log.WeekNo).Msg("Logbook entry submitted")
			return log, nil
		}
		if !errors.Is(err, apperrors.ErrDuplicateKey) {
			return nil, err
		}
		logger.Warn().Str("log_id", id).Msg("Logbook id collision, regenerating")
	}
	return nil, fmt.Errorf("failed to allocate a unique logbook id after %d attempts", maxIDRetries)
}

// Get returns one logbook entry by its code
func (s *LogbookService) Get(ctx context.Context, logID string) (*models.Logbook, error) {
	return s.logbooks.GetByID(ctx, logID)
}

// ListForOrganisation returns an organisation's entries, newest first
func (s *LogbookService) ListForOrganisation(ctx context.Context, orgID int64) ([]*models.Logbook, error) {
	if _, err := s.orgs.GetByID(ctx, orgID); err != nil {
		return nil, err
	}
	return s.logbooks.ListByOrganisation(ctx, orgID)
}

// MarkViewed transitions an entry to viewed. Calling it again is a no-op
// that preserves the original viewed timestamp.
func (s *LogbookService) MarkViewed(ctx context.Context, logID string) (*models.Logbook, error) {
	return s.logbooks.MarkViewed(ctx, logID, s.clock.Now())
}
