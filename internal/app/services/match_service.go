package services

import (
	"context"

	"github.com/kmoeti/attachtrack/internal/pkg/clock"
	"github.com/kmoeti/attachtrack/internal/pkg/logger"

	"github.com/kmoeti/attachtrack/internal/app/models"
	"github.com/kmoeti/attachtrack/internal/app/models/dto"
	"github.com/kmoeti/attachtrack/internal/app/repositories"
)

// MatchService records manual placement assignments
type MatchService struct {
	prefs   repositories.IStudentPreferenceRepository
	orgs    repositories.IOrganisationRepository
	matches repositories.IMatchRepository
	clock   clock.Clock
}

// NewMatchService creates a new match service
func NewMatchService(
	prefs repositories.IStudentPreferenceRepository,
	orgs repositories.IOrganisationRepository,
	matches repositories.IMatchRepository,
	clk clock.Clock,
) *MatchService {
	return &MatchService{prefs: prefs, orgs: orgs, matches: matches, clock: clk}
}

// ManualMatch assigns a student preference to an organisation. Re-matching
// the same preference replaces the previous assignment, so one preference
// never holds two matches.
func (s *MatchService) ManualMatch(ctx context.Context, req dto.ManualMatchRequest) (*models.StudentMatch, bool, error) {
	if _, err := s.prefs.GetByID(ctx, req.StudentPrefID); err != nil {
		return nil, false, err
	}
	if _, err := s.orgs.GetByID(ctx, req.OrgID); err != nil {
		return nil, false, err
	}

	match := &models.StudentMatch{
		StudentPrefID: req.StudentPrefID,
		OrgID:         req.OrgID,
		MatchedAt:     s.clock.Now(),
		AdminNote:     req.AdminNote,
	}
	created, err := s.matches.Upsert(ctx, match)
	if err != nil {
		return nil, false, err
	}

	logger.Info().
		Str("pref_id", match.StudentPrefID).
		Int64("org_id", match.OrgID).
		Bool("created", created).
		Msg("Manual match recorded")
	return match, created, nil
}

// GetMatch returns the match recorded for a preference
func (s *MatchService) GetMatch(ctx context.Context, studentPrefID string) (*models.StudentMatch, error) {
	return s.matches.GetByPreference(ctx, studentPrefID)
}
