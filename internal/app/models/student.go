package models

import "time"

// Student is a registered attachment candidate. StudentID is the
// university registration number and the primary key.
type Student struct {
	StudentID    string
	FirstName    string
	LastName     string
	YearOfStudy  int
	Email        string
	ContactNo    string
	PasswordHash string
	CreatedAt    time.Time
}
