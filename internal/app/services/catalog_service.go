package services

import (
	"context"

	"github.com/kmoeti/attachtrack/internal/app/models"
	"github.com/kmoeti/attachtrack/internal/app/repositories"
)

// CatalogService serves the industry and skill catalogs
type CatalogService struct {
	catalog repositories.ICatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalog repositories.ICatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// ListIndustries returns all catalog industries
func (s *CatalogService) ListIndustries(ctx context.Context) ([]models.Industry, error) {
	return s.catalog.ListIndustries(ctx)
}

// ListSkills returns all catalog skills
func (s *CatalogService) ListSkills(ctx context.Context) ([]models.Skill, error) {
	return s.catalog.ListSkills(ctx)
}
