package models

import "time"

// Logbook is one weekly attachment report. LogID is an 8-character
// random code. ViewedAt is set exactly once, when the organisation
// first marks the entry viewed.
type Logbook struct {
	LogID       string
	StudentID   string
	OrgID       int64
	WeekNo      int
	Entry       string
	SubmittedAt time.Time
	Status      LogbookStatus
	ViewedAt    *time.Time
}
