package models

import "time"

// Organisation is a host company offering attachment placements.
type Organisation struct {
	OrgID        int64
	OrgName      string
	IndustryID   int64
	IndustryName string
	LocationID   int64
	Street       string
	PlotNo       string
	ContactNo    string
	ContactEmail string
	PasswordHash string
	CreatedAt    time.Time
}

// Location is a reusable street address. The (street, plot_no) pair is unique.
type Location struct {
	ID     int64
	Street string
	PlotNo string
}
