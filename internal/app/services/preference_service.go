package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kmoeti/attachtrack/internal/pkg/clock"
	"github.com/kmoeti/attachtrack/internal/pkg/helpers"
	"github.com/kmoeti/attachtrack/internal/pkg/logger"
	"github.com/kmoeti/attachtrack/internal/pkg/validation"

	"github.com/kmoeti/attachtrack/internal/app/models"
	"github.com/kmoeti/attachtrack/internal/app/models/dto"
	"github.com/kmoeti/attachtrack/internal/app/repositories"
)

// PreferenceService manages student placement preferences and organisation
// hiring preferences
type PreferenceService struct {
	students     repositories.IStudentRepository
	orgs         repositories.IOrganisationRepository
	catalog      repositories.ICatalogRepository
	studentPrefs repositories.IStudentPreferenceRepository
	orgPrefs     repositories.IOrganisationPreferenceRepository
	clock        clock.Clock
}

// NewPreferenceService creates a new preference service
func NewPreferenceService(
	students repositories.IStudentRepository,
	orgs repositories.IOrganisationRepository,
	catalog repositories.ICatalogRepository,
	studentPrefs repositories.IStudentPreferenceRepository,
	orgPrefs repositories.IOrganisationPreferenceRepository,
	clk clock.Clock,
) *PreferenceService {
	return &PreferenceService{
		students:     students,
		orgs:         orgs,
		catalog:      catalog,
		studentPrefs: studentPrefs,
		orgPrefs:     orgPrefs,
		clock:        clk,
	}
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return time.Time{}, validationError(field, "Date must use the YYYY-MM-DD format")
	}
	return t, nil
}

// today returns the current date truncated to midnight UTC, matching how
// parsed wire dates are represented.
func (s *PreferenceService) today() time.Time {
	return helpers.DateOnly(s.clock.Now().UTC())
}

// resolveIndustries fetches the referenced industries, failing on the first
// unresolved id. An unknown reference is the caller's input being wrong, so
// it surfaces as a validation failure naming the id.
func (s *PreferenceService) resolveIndustries(ctx context.Context, field string, ids []int64) ([]models.Industry, error) {
	ids = dedupeIDs(ids)
	industries, err := s.catalog.GetIndustriesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(industries) != len(ids) {
		found := make(map[int64]bool, len(industries))
		for _, ind := range industries {
			found[ind.ID] = true
		}
		for _, id := range ids {
			if !found[id] {
				return nil, validationError(field, fmt.Sprintf("Industry %d not found", id))
			}
		}
	}
	return industries, nil
}

// resolveSkills fetches the referenced skills, failing on the first
// unresolved id. Like resolveIndustries, an unknown reference is a
// validation failure.
func (s *PreferenceService) resolveSkills(ctx context.Context, field string, ids []int64) ([]models.Skill, error) {
	ids = dedupeIDs(ids)
	skills, err := s.catalog.GetSkillsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(skills) != len(ids) {
		found := make(map[int64]bool, len(skills))
		for _, sk := range skills {
			found[sk.ID] = true
		}
		for _, id := range ids {
			if !found[id] {
				return nil, validationError(field, fmt.Sprintf("Skill %d not found", id))
			}
		}
	}
	return skills, nil
}

func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func idsOfIndustries(industries []models.Industry) []int64 {
	ids := make([]int64, 0, len(industries))
	for _, ind := range industries {
		ids = append(ids, ind.ID)
	}
	return ids
}

func idsOfSkills(skills []models.Skill) []int64 {
	ids := make([]int64, 0, len(skills))
	for _, sk := range skills {
		ids = append(ids, sk.ID)
	}
	return ids
}

// CreateStudentPreference validates the request and records a new placement
// preference with a derived sequential id
func (s *PreferenceService) CreateStudentPreference(ctx context.Context, req dto.StudentPreferenceCreateRequest) (*models.StudentPreference, error) {
	if _, err := s.students.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}
	if validation.IsBlank(req.PrefLocation) {
		return nil, validationError("prefLocation", "Preferred location must not be blank")
	}

	from, err := parseDate("availableFrom", req.AvailableFrom)
	if err != nil {
		return nil, err
	}
	to, err := parseDate("availableTo", req.AvailableTo)
	if err != nil {
		return nil, err
	}
	if from.Before(s.today()) {
		return nil, validationError("availableFrom", "Availability must not start in the past")
	}
	if to.Before(from) {
		return nil, validationError("availableTo", "Availability must not end before it starts")
	}

	industries, err := s.resolveIndustries(ctx, "industryIds", req.IndustryIDs)
	if err != nil {
		return nil, err
	}
	skills, err := s.resolveSkills(ctx, "skillIds", req.SkillIDs)
	if err != nil {
		return nil, err
	}

	pref := &models.StudentPreference{
		StudentID:     req.StudentID,
		PrefLocation:  req.PrefLocation,
		AvailableFrom: from,
		AvailableTo:   to,
		CreatedAt:     s.clock.Now(),
		Industries:    industries,
		Skills:        skills,
	}
	if err := s.studentPrefs.Create(ctx, pref, idsOfIndustries(industries), idsOfSkills(skills)); err != nil {
		return nil, err
	}

	logger.Info().Str("pref_id", pref.PrefID).Msg("Student preference recorded")
	return pref, nil
}

// UpdateStudentPreference merges the provided fields and re-validates the
// date ordering. The not-in-past rule applies only to a changed start date.
func (s *PreferenceService) UpdateStudentPreference(ctx context.Context, prefID string, req dto.StudentPreferenceUpdateRequest) (*models.StudentPreference, error) {
	pref, err := s.studentPrefs.GetByID(ctx, prefID)
	if err != nil {
		return nil, err
	}

	if req.PrefLocation != nil {
		if validation.IsBlank(*req.PrefLocation) {
			return nil, validationError("prefLocation", "Preferred location must not be blank")
		}
		pref.PrefLocation = *req.PrefLocation
	}
	if req.AvailableFrom != nil {
		from, err := parseDate("availableFrom", *req.AvailableFrom)
		if err != nil {
			return nil, err
		}
		if from.Before(s.today()) {
			return nil, validationError("availableFrom", "Availability must not start in the past")
		}
		pref.AvailableFrom = from
	}
	if req.AvailableTo != nil {
		to, err := parseDate("availableTo", *req.AvailableTo)
		if err != nil {
			return nil, err
		}
		pref.AvailableTo = to
	}
	if pref.AvailableTo.Before(pref.AvailableFrom) {
		return nil, validationError("availableTo", "Availability must not end before it starts")
	}

	var industryIDs, skillIDs []int64
	if req.IndustryIDs != nil {
		industries, err := s.resolveIndustries(ctx, "industryIds", req.IndustryIDs)
		if err != nil {
			return nil, err
		}
		pref.Industries = industries
		industryIDs = idsOfIndustries(industries)
	}
	if req.SkillIDs != nil {
		skills, err := s.resolveSkills(ctx, "skillIds", req.SkillIDs)
		if err != nil {
			return nil, err
		}
		pref.Skills = skills
		skillIDs = idsOfSkills(skills)
	}

	if err := s.studentPrefs.Update(ctx, pref, industryIDs, skillIDs); err != nil {
		return nil, err
	}
	return pref, nil
}

// GetStudentPreference returns one preference by id
func (s *PreferenceService) GetStudentPreference(ctx context.Context, prefID string) (*models.StudentPreference, error) {
	return s.studentPrefs.GetByID(ctx, prefID)
}

// ListStudentPreferences returns a student's preferences
func (s *PreferenceService) ListStudentPreferences(ctx context.Context, studentID string) ([]*models.StudentPreference, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.studentPrefs.ListByStudent(ctx, studentID)
}

// ListAllStudentPreferences returns every recorded preference
func (s *PreferenceService) ListAllStudentPreferences(ctx context.Context) ([]*models.StudentPreference, error) {
	return s.studentPrefs.ListAll(ctx)
}

// CreateOrganisationPreference validates the request and records a hiring
// preference with denormalized field names
func (s *PreferenceService) CreateOrganisationPreference(ctx context.Context, req dto.OrganisationPreferenceCreateRequest) (*models.OrganisationPreference, error) {
	if _, err := s.orgs.GetByID(ctx, req.OrgID); err != nil {
		return nil, err
	}
	if req.EducationLevel < 1 || req.EducationLevel > 6 {
		return nil, validationError("educationLevel", "Education level must be between 1 and 6")
	}
	if req.Positions < 1 {
		return nil, validationError("positions", "At least one position is required")
	}

	start, err := parseDate("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("endDate", req.EndDate)
	if err != nil {
		return nil, err
	}
	if start.Before(s.today()) {
		return nil, validationError("startDate", "Attachment must not start in the past")
	}
	if end.Before(start) {
		return nil, validationError("endDate", "Attachment must not end before it starts")
	}

	industries, err := s.resolveIndustries(ctx, "fieldIds", req.FieldIDs)
	if err != nil {
		return nil, err
	}
	skills, err := s.resolveSkills(ctx, "skillIds", req.SkillIDs)
	if err != nil {
		return nil, err
	}

	fields := make([]string, 0, len(industries))
	for _, ind := range industries {
		fields = append(fields, ind.Name)
	}

	pref := &models.OrganisationPreference{
		OrgID:           req.OrgID,
		EducationLevel:  req.EducationLevel,
		Positions:       req.Positions,
		StartDate:       start,
		EndDate:         end,
		CreatedAt:       s.clock.Now(),
		PreferredFields: fields,
		RequiredSkills:  skills,
	}
	if err := s.orgPrefs.Create(ctx, pref, idsOfSkills(skills)); err != nil {
		return nil, err
	}

	logger.Info().Int64("org_pref_id", pref.ID).Msg("Organisation preference recorded")
	return pref, nil
}

// UpdateOrganisationPreference merges the provided fields and re-validates
// the date ordering. The not-in-past rule applies only to a changed start
// date.
func (s *PreferenceService) UpdateOrganisationPreference(ctx context.Context, id int64, req dto.OrganisationPreferenceUpdateRequest) (*models.OrganisationPreference, error) {
	pref, err := s.orgPrefs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.EducationLevel != nil {
		if *req.EducationLevel < 1 || *req.EducationLevel > 6 {
			return nil, validationError("educationLevel", "Education level must be between 1 and 6")
		}
		pref.EducationLevel = *req.EducationLevel
	}
	if req.Positions != nil {
		if *req.Positions < 1 {
			return nil, validationError("positions", "At least one position is required")
		}
		pref.Positions = *req.Positions
	}
	if req.StartDate != nil {
		start, err := parseDate("startDate", *req.StartDate)
		if err != nil {
			return nil, err
		}
		if start.Before(s.today()) {
			return nil, validationError("startDate", "Attachment must not start in the past")
		}
		pref.StartDate = start
	}
	if req.EndDate != nil {
		end, err := parseDate("endDate", *req.EndDate)
		if err != nil {
			return nil, err
		}
		pref.EndDate = end
	}
	if pref.EndDate.Before(pref.StartDate) {
		return nil, validationError("endDate", "Attachment must not end before it starts")
	}

	var skillIDs []int64
	currentFields := pref.PreferredFields
	if req.FieldIDs != nil {
		industries, err := s.resolveIndustries(ctx, "fieldIds", req.FieldIDs)
		if err != nil {
			return nil, err
		}
		fields := make([]string, 0, len(industries))
		for _, ind := range industries {
			fields = append(fields, ind.Name)
		}
		pref.PreferredFields = fields
	} else {
		// nil tells the repository to leave the stored links alone
		pref.PreferredFields = nil
	}
	if req.SkillIDs != nil {
		skills, err := s.resolveSkills(ctx, "skillIds", req.SkillIDs)
		if err != nil {
			return nil, err
		}
		pref.RequiredSkills = skills
		skillIDs = idsOfSkills(skills)
	}

	if err := s.orgPrefs.Update(ctx, pref, skillIDs); err != nil {
		return nil, err
	}
	if pref.PreferredFields == nil {
		pref.PreferredFields = currentFields
	}
	return pref, nil
}

// ListOrganisationPreferences returns an organisation's hiring preferences
func (s *PreferenceService) ListOrganisationPreferences(ctx context.Context, orgID int64) ([]*models.OrganisationPreference, error) {
	if _, err := s.orgs.GetByID(ctx, orgID); err != nil {
		return nil, err
	}
	return s.orgPrefs.ListByOrganisation(ctx, orgID)
}
