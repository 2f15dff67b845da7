package models

import "time"

// StudentPreference is a student's placement wish. PrefID is derived as
// "{student_id}_PREF{seq:03d}" from a per-student counter.
type StudentPreference struct {
	PrefID        string
	StudentID     string
	PrefLocation  string
	AvailableFrom time.Time
	AvailableTo   time.Time
	CreatedAt     time.Time

	Industries []Industry
	Skills     []Skill
}

// OrganisationPreference is an organisation's hiring profile for an
// attachment intake.
type OrganisationPreference struct {
	ID             int64
	OrgID          int64
	EducationLevel int
	Positions      int
	StartDate      time.Time
	EndDate        time.Time
	CreatedAt      time.Time

	// PreferredFields holds industry names denormalized at creation time.
	PreferredFields []string
	RequiredSkills  []Skill
}
