// Package models defines the persistent domain entities.
package models

// RoleType identifies the authenticated party type.
type RoleType string

// Account roles
const (
	RoleStudent      RoleType = "STUDENT"
	RoleOrganisation RoleType = "ORGANISATION"
	RoleAdmin        RoleType = "ADMIN"
)

// LogbookStatus is the review state of a weekly log entry.
type LogbookStatus string

// Logbook states
const (
	LogbookPending LogbookStatus = "pending"
	LogbookViewed  LogbookStatus = "viewed"
)
