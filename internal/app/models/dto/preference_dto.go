package dto

import (
	"time"

	"github.com/kmoeti/attachtrack/internal/app/models"
)

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// StudentPreferenceCreateRequest creates a placement preference
type StudentPreferenceCreateRequest struct {
	StudentID     string  `json:"studentId" binding:"required"`
	PrefLocation  string  `json:"prefLocation" binding:"required"`
	AvailableFrom string  `json:"availableFrom" binding:"required"`
	AvailableTo   string  `json:"availableTo" binding:"required"`
	IndustryIDs   []int64 `json:"industryIds" binding:"required,min=1"`
	SkillIDs      []int64 `json:"skillIds" binding:"required,min=1"`
}

// StudentPreferenceUpdateRequest carries a partial preference update
type StudentPreferenceUpdateRequest struct {
	PrefLocation  *string `json:"prefLocation"`
	AvailableFrom *string `json:"availableFrom"`
	AvailableTo   *string `json:"availableTo"`
	IndustryIDs   []int64 `json:"industryIds"`
	SkillIDs      []int64 `json:"skillIds"`
}

// StudentPreferenceResponse is the external representation of a preference
type StudentPreferenceResponse struct {
	PrefID        string             `json:"prefId"`
	StudentID     string             `json:"studentId"`
	PrefLocation  string             `json:"prefLocation"`
	AvailableFrom string             `json:"availableFrom"`
	AvailableTo   string             `json:"availableTo"`
	CreatedAt     time.Time          `json:"createdAt"`
	Industries    []IndustryResponse `json:"industries"`
	Skills        []SkillResponse    `json:"skills"`
}

// NewStudentPreferenceResponse maps a preference model to its response form
func NewStudentPreferenceResponse(p *models.StudentPreference) StudentPreferenceResponse {
	resp := StudentPreferenceResponse{
		PrefID:        p.PrefID,
		StudentID:     p.StudentID,
		PrefLocation:  p.PrefLocation,
		AvailableFrom: p.AvailableFrom.Format(DateLayout),
		AvailableTo:   p.AvailableTo.Format(DateLayout),
		CreatedAt:     p.CreatedAt,
		Industries:    make([]IndustryResponse, 0, len(p.Industries)),
		Skills:        make([]SkillResponse, 0, len(p.Skills)),
	}
	for _, ind := range p.Industries {
		resp.Industries = append(resp.Industries, IndustryResponse{ID: ind.ID, Name: ind.Name})
	}
	for _, sk := range p.Skills {
		resp.Skills = append(resp.Skills, SkillResponse{ID: sk.ID, Name: sk.Name})
	}
	return resp
}

// OrganisationPreferenceCreateRequest creates a hiring preference
type OrganisationPreferenceCreateRequest struct {
	OrgID          int64   `json:"orgId" binding:"required"`
	EducationLevel int     `json:"educationLevel" binding:"required,gte=1,lte=6"`
	Positions      int     `json:"positions" binding:"required,gte=1"`
	StartDate      string  `json:"startDate" binding:"required"`
	EndDate        string  `json:"endDate" binding:"required"`
	FieldIDs       []int64 `json:"fieldIds" binding:"required,min=1"`
	SkillIDs       []int64 `json:"skillIds" binding:"required,min=1"`
}

// OrganisationPreferenceUpdateRequest carries a partial hiring-preference update
type OrganisationPreferenceUpdateRequest struct {
	EducationLevel *int    `json:"educationLevel"`
	Positions      *int    `json:"positions"`
	StartDate      *string `json:"startDate"`
	EndDate        *string `json:"endDate"`
	FieldIDs       []int64 `json:"fieldIds"`
	SkillIDs       []int64 `json:"skillIds"`
}

// OrganisationPreferenceResponse is the external representation of a hiring preference
type OrganisationPreferenceResponse struct {
	ID              int64           `json:"id"`
	OrgID           int64           `json:"orgId"`
	EducationLevel  int             `json:"educationLevel"`
	Positions       int             `json:"positions"`
	StartDate       string          `json:"startDate"`
	EndDate         string          `json:"endDate"`
	CreatedAt       time.Time       `json:"createdAt"`
	PreferredFields []string        `json:"preferredFields"`
	RequiredSkills  []SkillResponse `json:"requiredSkills"`
}

// NewOrganisationPreferenceResponse maps a hiring preference to its response form
func NewOrganisationPreferenceResponse(p *models.OrganisationPreference) OrganisationPreferenceResponse {
	resp := OrganisationPreferenceResponse{
		ID:              p.ID,
		OrgID:           p.OrgID,
		EducationLevel:  p.EducationLevel,
		Positions:       p.Positions,
		StartDate:       p.StartDate.Format(DateLayout),
		EndDate:         p.EndDate.Format(DateLayout),
		CreatedAt:       p.CreatedAt,
		PreferredFields: p.PreferredFields,
		RequiredSkills:  make([]SkillResponse, 0, len(p.RequiredSkills)),
	}
	if resp.PreferredFields == nil {
		resp.PreferredFields = []string{}
	}
	for _, sk := range p.RequiredSkills {
		resp.RequiredSkills = append(resp.RequiredSkills, SkillResponse{ID: sk.ID, Name: sk.Name})
	}
	return resp
}
