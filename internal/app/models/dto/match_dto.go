package dto

import (
	"time"

	"github.com/kmoeti/attachtrack/internal/app/models"
)

// ManualMatchRequest assigns a student preference to an organisation
type ManualMatchRequest struct {
	StudentPrefID string `json:"studentPrefId" binding:"required"`
	OrgID         int64  `json:"orgId" binding:"required"`
	AdminNote     string `json:"adminNote"`
}

// ManualMatchResponse reports the upserted match
type ManualMatchResponse struct {
	MatchID       int64     `json:"matchId"`
	StudentPrefID string    `json:"studentPrefId"`
	OrgID         int64     `json:"orgId"`
	MatchedAt     time.Time `json:"matchedAt"`
	AdminNote     string    `json:"adminNote,omitempty"`
	Created       bool      `json:"created"`
}

// NewManualMatchResponse maps a match to its response form
func NewManualMatchResponse(m *models.StudentMatch, created bool) ManualMatchResponse {
	return ManualMatchResponse{
		MatchID:       m.ID,
		StudentPrefID: m.StudentPrefID,
		OrgID:         m.OrgID,
		MatchedAt:     m.MatchedAt,
		AdminNote:     m.AdminNote,
		Created:       created,
	}
}
