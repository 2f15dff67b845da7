package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kmoeti/attachtrack/internal/middleware"

	"github.com/kmoeti/attachtrack/internal/app/models/dto"
	"github.com/kmoeti/attachtrack/internal/app/services"
)

// MatchController records manual placement assignments
type MatchController struct {
	matchService *services.MatchService
}

// NewMatchController creates a new match controller
func NewMatchController(matchService *services.MatchService) *MatchController {
	return &MatchController{matchService: matchService}
}

// ManualMatch handles POST /api/v1/matches
func (ctrl *MatchController) ManualMatch(c *gin.Context) {
	var req dto.ManualMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	match, created, err := ctrl.matchService.ManualMatch(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.SuccessResponse(dto.NewManualMatchResponse(match, created)))
}

// GetMatch handles GET /api/v1/preferences/students/:prefId/match
func (ctrl *MatchController) GetMatch(c *gin.Context) {
	match, err := ctrl.matchService.GetMatch(c.Request.Context(), c.Param("prefId"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.NewManualMatchResponse(match, false)))
}
