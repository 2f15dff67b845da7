// Package controllers exposes the HTTP handlers.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kmoeti/attachtrack/internal/middleware"

	"github.com/kmoeti/attachtrack/internal/app/models/dto"
	"github.com/kmoeti/attachtrack/internal/app/services"
)

// bindingError answers a gin binding failure with a field-keyed 400
func bindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse(dto.HandleValidationError(err)))
}

// AuthController handles registration, login and password changes
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// RegisterStudent handles POST /api/v1/auth/students/register
func (ctrl *AuthController) RegisterStudent(c *gin.Context) {
	var req dto.StudentRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	student, err := ctrl.authService.RegisterStudent(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.SuccessResponse(dto.NewStudentResponse(student)))
}

// RegisterOrganisation handles POST /api/v1/auth/organisations/register
func (ctrl *AuthController) RegisterOrganisation(c *gin.Context) {
	var req dto.OrganisationRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	org, err := ctrl.authService.RegisterOrganisation(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.SuccessResponse(dto.NewOrganisationResponse(org)))
}

// RegisterAdmin handles POST /api/v1/auth/admins/register
func (ctrl *AuthController) RegisterAdmin(c *gin.Context) {
	var req dto.AdminRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	admin, err := ctrl.authService.RegisterAdmin(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.SuccessResponse(gin.H{
		"id":        admin.ID,
		"firstName": admin.FirstName,
		"lastName":  admin.LastName,
		"email":     admin.Email,
	}))
}

// LoginStudent handles POST /api/v1/auth/students/login
func (ctrl *AuthController) LoginStudent(c *gin.Context) {
	var req dto.StudentLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	resp, err := ctrl.authService.LoginStudent(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(resp))
}

// LoginOrganisation handles POST /api/v1/auth/organisations/login
func (ctrl *AuthController) LoginOrganisation(c *gin.Context) {
	var req dto.OrganisationLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	resp, err := ctrl.authService.LoginOrganisation(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(resp))
}

// LoginAdmin handles POST /api/v1/auth/admins/login
func (ctrl *AuthController) LoginAdmin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	resp, err := ctrl.authService.LoginAdmin(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(resp))
}

// ChangeStudentPassword handles POST /api/v1/students/:studentId/password
func (ctrl *AuthController) ChangeStudentPassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	err := ctrl.authService.ChangeStudentPassword(c.Request.Context(), c.Param("studentId"), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(gin.H{"message": "Password updated"}))
}

// ChangeOrganisationPassword handles POST /api/v1/organisations/:orgId/password
func (ctrl *AuthController) ChangeOrganisationPassword(c *gin.Context) {
	orgID, err := strconv.ParseInt(c.Param("orgId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid organisation id").WithField("orgId")))
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	if err := ctrl.authService.ChangeOrganisationPassword(c.Request.Context(), orgID, req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(gin.H{"message": "Password updated"}))
}
