package services

import (
	"context"
	"strings"

	"github.com/kmoeti/attachtrack/internal/pkg/apperrors"
	"github.com/kmoeti/attachtrack/internal/pkg/validation"

	"github.com/kmoeti/attachtrack/internal/app/models"
	"github.com/kmoeti/attachtrack/internal/app/models/dto"
	"github.com/kmoeti/attachtrack/internal/app/repositories"
)

// OrganisationService manages organisation profiles
type OrganisationService struct {
	orgs    repositories.IOrganisationRepository
	catalog repositories.ICatalogRepository
}

// NewOrganisationService creates a new organisation service
func NewOrganisationService(orgs repositories.IOrganisationRepository, catalog repositories.ICatalogRepository) *OrganisationService {
	return &OrganisationService{orgs: orgs, catalog: catalog}
}

// Get returns one organisation profile
func (s *OrganisationService) Get(ctx context.Context, orgID int64) (*models.Organisation, error) {
	return s.orgs.GetByID(ctx, orgID)
}

// List returns all organisations
func (s *OrganisationService) List(ctx context.Context) ([]*models.Organisation, error) {
	return s.orgs.List(ctx)
}

// ResolveIDByName looks an organisation up by its unique name
func (s *OrganisationService) ResolveIDByName(ctx context.Context, orgName string) (int64, error) {
	org, err := s.orgs.GetByName(ctx, orgName)
	if err != nil {
		return 0, err
	}
	return org.OrgID, nil
}

// Update merges the provided fields into the profile and re-validates them
func (s *OrganisationService) Update(ctx context.Context, orgID int64, req dto.OrganisationUpdateRequest) (*models.Organisation, error) {
	org, err := s.orgs.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	if req.OrgName != nil {
		if validation.IsBlank(*req.OrgName) {
			return nil, validationError("orgName", "Organisation name must not be blank")
		}
		org.OrgName = strings.TrimSpace(*req.OrgName)
	}
	if req.IndustryID != nil {
		industries, err := s.catalog.GetIndustriesByIDs(ctx, []int64{*req.IndustryID})
		if err != nil {
			return nil, err
		}
		if len(industries) == 0 {
			return nil, apperrors.ErrIndustryNotFound
		}
		org.IndustryID = *req.IndustryID
		org.IndustryName = industries[0].Name
	}
	if req.Street != nil {
		if validation.IsBlank(*req.Street) {
			return nil, validationError("street", "Street must not be blank")
		}
		org.Street = strings.TrimSpace(*req.Street)
	}
	if req.PlotNo != nil {
		if validation.IsBlank(*req.PlotNo) || strings.HasPrefix(*req.PlotNo, "-") {
			return nil, validationError("plotNo", "Plot number must not be blank or negative")
		}
		org.PlotNo = strings.TrimSpace(*req.PlotNo)
	}
	if req.ContactNo != nil {
		if !validation.IsValidPhone(*req.ContactNo) {
			return nil, validationError("contactNo", "Invalid contact number format")
		}
		org.ContactNo = *req.ContactNo
	}
	if req.ContactEmail != nil {
		if !validation.IsValidEmail(*req.ContactEmail) {
			return nil, validationError("contactEmail", "Invalid email format")
		}
		org.ContactEmail = *req.ContactEmail
	}

	if err := s.orgs.Update(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

// Delete removes an organisation account
func (s *OrganisationService) Delete(ctx context.Context, orgID int64) error {
	return s.orgs.Delete(ctx, orgID)
}
