package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kmoeti/attachtrack/internal/middleware"

	"github.com/kmoeti/attachtrack/internal/app/models/dto"
	"github.com/kmoeti/attachtrack/internal/app/services"
)

// LogbookController manages weekly attachment reports
type LogbookController struct {
	logbookService *services.LogbookService
}

// NewLogbookController creates a new logbook controller
func NewLogbookController(logbookService *services.LogbookService) *LogbookController {
	return &LogbookController{logbookService: logbookService}
}

// Submit handles POST /api/v1/logbooks
func (ctrl *LogbookController) Submit(c *gin.Context) {
	var req dto.LogbookSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	log, err := ctrl.logbookService.Submit(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.SuccessResponse(dto.NewLogbookResponse(log)))
}

// Get handles GET /api/v1/logbooks/:logId
func (ctrl *LogbookController) Get(c *gin.Context) {
	log, err := ctrl.logbookService.Get(c.Request.Context(), c.Param("logId"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.NewLogbookResponse(log)))
}

// ListForOrganisation handles GET /api/v1/organisations/:orgId/logbooks
func (ctrl *LogbookController) ListForOrganisation(c *gin.Context) {
	orgID, ok := orgIDParam(c)
	if !ok {
		return
	}

	logs, err := ctrl.logbookService.ListForOrganisation(c.Request.Context(), orgID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	out := make([]dto.LogbookResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.NewLogbookResponse(l))
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(out))
}

// MarkViewed handles POST /api/v1/logbooks/:logId/viewed
func (ctrl *LogbookController) MarkViewed(c *gin.Context) {
	log, err := ctrl.logbookService.MarkViewed(c.Request.Context(), c.Param("logId"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.NewLogbookResponse(log)))
}
