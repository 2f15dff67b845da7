package dto

import (
	"time"

	"github.com/kmoeti/attachtrack/internal/app/models"
)

// OrganisationResponse is the external representation of an organisation
type OrganisationResponse struct {
	OrgID        int64     `json:"orgId"`
	OrgName      string    `json:"orgName"`
	IndustryID   int64     `json:"industryId"`
	IndustryName string    `json:"industryName,omitempty"`
	Street       string    `json:"street"`
	PlotNo       string    `json:"plotNo"`
	ContactNo    string    `json:"contactNo"`
	ContactEmail string    `json:"contactEmail"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewOrganisationResponse maps an organisation model to its response form
func NewOrganisationResponse(o *models.Organisation) OrganisationResponse {
	return OrganisationResponse{
		OrgID:        o.OrgID,
		OrgName:      o.OrgName,
		IndustryID:   o.IndustryID,
		IndustryName: o.IndustryName,
		Street:       o.Street,
		PlotNo:       o.PlotNo,
		ContactNo:    o.ContactNo,
		ContactEmail: o.ContactEmail,
		CreatedAt:    o.CreatedAt,
	}
}

// OrganisationUpdateRequest carries a partial organisation profile update
type OrganisationUpdateRequest struct {
	OrgName      *string `json:"orgName"`
	IndustryID   *int64  `json:"industryId"`
	Street       *string `json:"street"`
	PlotNo       *string `json:"plotNo"`
	ContactNo    *string `json:"contactNo"`
	ContactEmail *string `json:"contactEmail"`
}

// OrgIDResponse resolves an organisation name to its id
type OrgIDResponse struct {
	OrgID int64 `json:"orgId"`
}
