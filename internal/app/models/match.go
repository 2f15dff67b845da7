package models

import "time"

// StudentMatch is an administrator's manual assignment of a student
// preference to an organisation. At most one match exists per preference.
type StudentMatch struct {
	ID            int64
	StudentPrefID string
	OrgID         int64
	MatchedAt     time.Time
	AdminNote     string
}
