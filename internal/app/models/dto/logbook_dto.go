package dto

import (
	"time"

	"github.com/kmoeti/attachtrack/internal/app/models"
)

// LogbookSubmitRequest submits one weekly report
type LogbookSubmitRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	OrgID     int64  `json:"orgId" binding:"required"`
	WeekNo    int    `json:"weekNo" binding:"required"`
	Entry     string `json:"entry" binding:"required"`
}

// LogbookResponse is the external representation of a logbook entry
type LogbookResponse struct {
	LogID       string     `json:"logId"`
	StudentID   string     `json:"studentId"`
	OrgID       int64      `json:"orgId"`
	WeekNo      int        `json:"weekNo"`
	Entry       string     `json:"entry"`
	SubmittedAt time.Time  `json:"submittedAt"`
	Status      string     `json:"status"`
	ViewedAt    *time.Time `json:"viewedAt,omitempty"`
}

// NewLogbookResponse maps a logbook model to its response form
func NewLogbookResponse(l *models.Logbook) LogbookResponse {
	return LogbookResponse{
		LogID:       l.LogID,
		StudentID:   l.StudentID,
		OrgID:       l.OrgID,
		WeekNo:      l.WeekNo,
		Entry:       l.Entry,
		SubmittedAt: l.SubmittedAt,
		Status:      string(l.Status),
		ViewedAt:    l.ViewedAt,
	}
}
