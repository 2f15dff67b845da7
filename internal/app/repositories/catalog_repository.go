package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kmoeti/attachtrack/internal/app/models"
)

// CatalogRepository implements ICatalogRepository over PostgreSQL
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// ListIndustries returns all industries ordered by name
func (r *CatalogRepository) ListIndustries(ctx context.Context) ([]models.Industry, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM industries ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list industries: %w", err)
	}
	defer rows.Close()

	industries := make([]models.Industry, 0)
	for rows.Next() {
		var ind models.Industry
		if err := rows.Scan(&ind.ID, &ind.Name); err != nil {
			return nil, fmt.Errorf("failed to scan industry row: %w", err)
		}
		industries = append(industries, ind)
	}
	return industries, rows.Err()
}

// ListSkills returns all skills ordered by name
func (r *CatalogRepository) ListSkills(ctx context.Context) ([]models.Skill, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM skills ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	skills := make([]models.Skill, 0)
	for rows.Next() {
		var sk models.Skill
		if err := rows.Scan(&sk.ID, &sk.Name); err != nil {
			return nil, fmt.Errorf("failed to scan skill row: %w", err)
		}
		skills = append(skills, sk)
	}
	return skills, rows.Err()
}

// GetIndustriesByIDs returns the industries matching ids. Missing ids are
// simply absent from the result; callers detect them by length.
func (r *CatalogRepository) GetIndustriesByIDs(ctx context.Context, ids []int64) ([]models.Industry, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM industries WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch industries: %w", err)
	}
	defer rows.Close()

	industries := make([]models.Industry, 0, len(ids))
	for rows.Next() {
		var ind models.Industry
		if err := rows.Scan(&ind.ID, &ind.Name); err != nil {
			return nil, fmt.Errorf("failed to scan industry row: %w", err)
		}
		industries = append(industries, ind)
	}
	return industries, rows.Err()
}

// GetSkillsByIDs returns the skills matching ids. Missing ids are absent
// from the result.
func (r *CatalogRepository) GetSkillsByIDs(ctx context.Context, ids []int64) ([]models.Skill, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM skills WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skills: %w", err)
	}
	defer rows.Close()

	skills := make([]models.Skill, 0, len(ids))
	for rows.Next() {
		var sk models.Skill
		if err := rows.Scan(&sk.ID, &sk.Name); err != nil {
			return nil, fmt.Errorf("failed to scan skill row: %w", err)
		}
		skills = append(skills, sk)
	}
	return skills, rows.Err()
}

// EnsureIndustry inserts a catalog industry if it does not exist yet
func (r *CatalogRepository) EnsureIndustry(ctx context.Context, name string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO industries (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
	if err != nil {
		return fmt.Errorf("failed to ensure industry %q: %w", name, err)
	}
	return nil
}

// EnsureSkill inserts a catalog skill if it does not exist yet
func (r *CatalogRepository) EnsureSkill(ctx context.Context, name string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO skills (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
	if err != nil {
		return fmt.Errorf("failed to ensure skill %q: %w", name, err)
	}
	return nil
}
