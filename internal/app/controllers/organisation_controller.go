package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kmoeti/attachtrack/internal/middleware"

	"github.com/kmoeti/attachtrack/internal/app/models/dto"
	"github.com/kmoeti/attachtrack/internal/app/services"
)

// OrganisationController manages organisation profiles
type OrganisationController struct {
	orgService *services.OrganisationService
}

// NewOrganisationController creates a new organisation controller
func NewOrganisationController(orgService *services.OrganisationService) *OrganisationController {
	return &OrganisationController{orgService: orgService}
}

func orgIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("orgId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid organisation id").WithField("orgId")))
		return 0, false
	}
	return id, true
}

// Get handles GET /api/v1/organisations/:orgId
func (ctrl *OrganisationController) Get(c *gin.Context) {
	orgID, ok := orgIDParam(c)
	if !ok {
		return
	}

	org, err := ctrl.orgService.Get(c.Request.Context(), orgID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.NewOrganisationResponse(org)))
}

// List handles GET /api/v1/organisations
func (ctrl *OrganisationController) List(c *gin.Context) {
	orgs, err := ctrl.orgService.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	out := make([]dto.OrganisationResponse, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, dto.NewOrganisationResponse(o))
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(out))
}

// ResolveID handles GET /api/v1/organisations/resolve?name=...
func (ctrl *OrganisationController) ResolveID(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Organisation name is required").WithField("name")))
		return
	}

	orgID, err := ctrl.orgService.ResolveIDByName(c.Request.Context(), name)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.OrgIDResponse{OrgID: orgID}))
}

// Update handles PATCH /api/v1/organisations/:orgId
func (ctrl *OrganisationController) Update(c *gin.Context) {
	orgID, ok := orgIDParam(c)
	if !ok {
		return
	}

	var req dto.OrganisationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	org, err := ctrl.orgService.Update(c.Request.Context(), orgID, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.NewOrganisationResponse(org)))
}

// Delete handles DELETE /api/v1/organisations/:orgId
func (ctrl *OrganisationController) Delete(c *gin.Context) {
	orgID, ok := orgIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.orgService.Delete(c.Request.Context(), orgID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(gin.H{"message": "Organisation deleted"}))
}
