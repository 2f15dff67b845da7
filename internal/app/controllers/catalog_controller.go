package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kmoeti/attachtrack/internal/middleware"

	"github.com/kmoeti/attachtrack/internal/app/models/dto"
	"github.com/kmoeti/attachtrack/internal/app/services"
)

// CatalogController serves the industry and skill catalogs
type CatalogController struct {
	catalogService *services.CatalogService
}

// NewCatalogController creates a new catalog controller
func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// ListIndustries handles GET /api/v1/industries
func (ctrl *CatalogController) ListIndustries(c *gin.Context) {
	industries, err := ctrl.catalogService.ListIndustries(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	out := make([]dto.IndustryResponse, 0, len(industries))
	for _, ind := range industries {
		out = append(out, dto.IndustryResponse{ID: ind.ID, Name: ind.Name})
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(out))
}

// ListSkills handles GET /api/v1/skills
func (ctrl *CatalogController) ListSkills(c *gin.Context) {
	skills, err := ctrl.catalogService.ListSkills(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	out := make([]dto.SkillResponse, 0, len(skills))
	for _, sk := range skills {
		out = append(out, dto.SkillResponse{ID: sk.ID, Name: sk.Name})
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(out))
}
