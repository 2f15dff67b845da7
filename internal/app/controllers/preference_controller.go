package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kmoeti/attachtrack/internal/middleware"

	"github.com/kmoeti/attachtrack/internal/app/models/dto"
	"github.com/kmoeti/attachtrack/internal/app/services"
)

// PreferenceController manages student and organisation preferences
type PreferenceController struct {
	prefService *services.PreferenceService
}

// NewPreferenceController creates a new preference controller
func NewPreferenceController(prefService *services.PreferenceService) *PreferenceController {
	return &PreferenceController{prefService: prefService}
}

// CreateStudentPreference handles POST /api/v1/preferences/students
func (ctrl *PreferenceController) CreateStudentPreference(c *gin.Context) {
	var req dto.StudentPreferenceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	pref, err := ctrl.prefService.CreateStudentPreference(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.SuccessResponse(dto.NewStudentPreferenceResponse(pref)))
}

// GetStudentPreference handles GET /api/v1/preferences/students/:prefId
func (ctrl *PreferenceController) GetStudentPreference(c *gin.Context) {
	pref, err := ctrl.prefService.GetStudentPreference(c.Request.Context(), c.Param("prefId"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.NewStudentPreferenceResponse(pref)))
}

// UpdateStudentPreference handles PATCH /api/v1/preferences/students/:prefId
func (ctrl *PreferenceController) UpdateStudentPreference(c *gin.Context) {
	var req dto.StudentPreferenceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	pref, err := ctrl.prefService.UpdateStudentPreference(c.Request.Context(), c.Param("prefId"), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.NewStudentPreferenceResponse(pref)))
}

// ListStudentPreferences handles GET /api/v1/students/:studentId/preferences
func (ctrl *PreferenceController) ListStudentPreferences(c *gin.Context) {
	prefs, err := ctrl.prefService.ListStudentPreferences(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	out := make([]dto.StudentPreferenceResponse, 0, len(prefs))
	for _, p := range prefs {
		out = append(out, dto.NewStudentPreferenceResponse(p))
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(out))
}

// ListAllStudentPreferences handles GET /api/v1/preferences/students
func (ctrl *PreferenceController) ListAllStudentPreferences(c *gin.Context) {
	prefs, err := ctrl.prefService.ListAllStudentPreferences(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	out := make([]dto.StudentPreferenceResponse, 0, len(prefs))
	for _, p := range prefs {
		out = append(out, dto.NewStudentPreferenceResponse(p))
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(out))
}

// CreateOrganisationPreference handles POST /api/v1/preferences/organisations
func (ctrl *PreferenceController) CreateOrganisationPreference(c *gin.Context) {
	var req dto.OrganisationPreferenceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	pref, err := ctrl.prefService.CreateOrganisationPreference(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.SuccessResponse(dto.NewOrganisationPreferenceResponse(pref)))
}

// UpdateOrganisationPreference handles PATCH /api/v1/preferences/organisations/:id
func (ctrl *PreferenceController) UpdateOrganisationPreference(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid preference id").WithField("id")))
		return
	}

	var req dto.OrganisationPreferenceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	pref, err := ctrl.prefService.UpdateOrganisationPreference(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.NewOrganisationPreferenceResponse(pref)))
}

// ListOrganisationPreferences handles GET /api/v1/organisations/:orgId/preferences
func (ctrl *PreferenceController) ListOrganisationPreferences(c *gin.Context) {
	orgID, ok := orgIDParam(c)
	if !ok {
		return
	}

	prefs, err := ctrl.prefService.ListOrganisationPreferences(c.Request.Context(), orgID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	out := make([]dto.OrganisationPreferenceResponse, 0, len(prefs))
	for _, p := range prefs {
		out = append(out, dto.NewOrganisationPreferenceResponse(p))
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(out))
}
