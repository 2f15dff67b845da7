package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kmoeti/attachtrack/internal/db"
	"github.com/kmoeti/attachtrack/internal/pkg/apperrors"

	"github.com/kmoeti/attachtrack/internal/app/models"
)

// OrganisationPreferenceRepository implements IOrganisationPreferenceRepository
// over PostgreSQL
type OrganisationPreferenceRepository struct {
	pool *pgxpool.Pool
}

// NewOrganisationPreferenceRepository creates a new organisation preference
// repository
func NewOrganisationPreferenceRepository(pool *pgxpool.Pool) *OrganisationPreferenceRepository {
	return &OrganisationPreferenceRepository{pool: pool}
}

// Create inserts a hiring preference with its field and skill links in one
// transaction. PreferredFields carries the industry names already resolved
// by the caller; they are stored denormalized.
func (r *OrganisationPreferenceRepository) Create(ctx context.Context, pref *models.OrganisationPreference, skillIDs []int64) error {
	return db.WithTransaction(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO organisation_preferences
			   (org_id, education_level, positions, start_date, end_date, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			pref.OrgID, pref.EducationLevel, pref.Positions,
			pref.StartDate, pref.EndDate, pref.CreatedAt,
		).Scan(&pref.ID)
		if err != nil {
			return fmt.Errorf("failed to create organisation preference: %w", err)
		}

		return insertOrgPrefLinks(ctx, tx, pref.ID, pref.PreferredFields, skillIDs)
	})
}

func insertOrgPrefLinks(ctx context.Context, tx pgx.Tx, prefID int64, fields []string, skillIDs []int64) error {
	for _, field := range fields {
		_, err := tx.Exec(ctx,
			`INSERT INTO org_pref_fields (org_pref_id, field_name) VALUES ($1, $2)`,
			prefID, field)
		if err != nil {
			return fmt.Errorf("failed to link field %q: %w", field, err)
		}
	}
	for _, id := range skillIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO org_pref_skills (org_pref_id, skill_id) VALUES ($1, $2)`,
			prefID, id)
		if err != nil {
			return fmt.Errorf("failed to link skill %d: %w", id, err)
		}
	}
	return nil
}

// GetByID fetches a hiring preference with its links
func (r *OrganisationPreferenceRepository) GetByID(ctx context.Context, id int64) (*models.OrganisationPreference, error) {
	var p models.OrganisationPreference
	err := r.pool.QueryRow(ctx,
		`SELECT id, org_id, education_level, positions, start_date, end_date, created_at
		 FROM organisation_preferences WHERE id = $1`,
		id).Scan(
		&p.ID, &p.OrgID, &p.EducationLevel, &p.Positions,
		&p.StartDate, &p.EndDate, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPreferenceNotFound
		}
		return nil, fmt.Errorf("failed to fetch organisation preference: %w", err)
	}

	if err := r.attachLinks(ctx, []*models.OrganisationPreference{&p}); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByOrganisation returns all hiring preferences of one organisation
func (r *OrganisationPreferenceRepository) ListByOrganisation(ctx context.Context, orgID int64) ([]*models.OrganisationPreference, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, org_id, education_level, positions, start_date, end_date, created_at
		 FROM organisation_preferences WHERE org_id = $1 ORDER BY id`,
		orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organisation preferences: %w", err)
	}
	defer rows.Close()

	prefs := make([]*models.OrganisationPreference, 0)
	for rows.Next() {
		var p models.OrganisationPreference
		err := rows.Scan(&p.ID, &p.OrgID, &p.EducationLevel, &p.Positions,
			&p.StartDate, &p.EndDate, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan organisation preference row: %w", err)
		}
		prefs = append(prefs, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachLinks(ctx, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

func (r *OrganisationPreferenceRepository) attachLinks(ctx context.Context, prefs []*models.OrganisationPreference) error {
	if len(prefs) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(prefs))
	byID := make(map[int64]*models.OrganisationPreference, len(prefs))
	for _, p := range prefs {
		ids = append(ids, p.ID)
		byID[p.ID] = p
		p.PreferredFields = make([]string, 0)
		p.RequiredSkills = make([]models.Skill, 0)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT org_pref_id, field_name FROM org_pref_fields
		 WHERE org_pref_id = ANY($1) ORDER BY field_name`, ids)
	if err != nil {
		return fmt.Errorf("failed to load preferred fields: %w", err)
	}
	for rows.Next() {
		var prefID int64
		var field string
		if err := rows.Scan(&prefID, &field); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan preferred field: %w", err)
		}
		byID[prefID].PreferredFields = append(byID[prefID].PreferredFields, field)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.pool.Query(ctx,
		`SELECT ops.org_pref_id, s.id, s.name
		 FROM org_pref_skills ops
		 JOIN skills s ON s.id = ops.skill_id
		 WHERE ops.org_pref_id = ANY($1)
		 ORDER BY s.name`, ids)
	if err != nil {
		return fmt.Errorf("failed to load required skills: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var prefID int64
		var sk models.Skill
		if err := rows.Scan(&prefID, &sk.ID, &sk.Name); err != nil {
			return fmt.Errorf("failed to scan required skill: %w", err)
		}
		byID[prefID].RequiredSkills = append(byID[prefID].RequiredSkills, sk)
	}
	return rows.Err()
}

// Update rewrites the hiring-preference fields and replaces its links
func (r *OrganisationPreferenceRepository) Update(ctx context.Context, pref *models.OrganisationPreference, skillIDs []int64) error {
	return db.WithTransaction(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE organisation_preferences
			 SET education_level = $1, positions = $2, start_date = $3, end_date = $4
			 WHERE id = $5`,
			pref.EducationLevel, pref.Positions, pref.StartDate, pref.EndDate, pref.ID)
		if err != nil {
			return fmt.Errorf("failed to update organisation preference: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrPreferenceNotFound
		}

		if pref.PreferredFields == nil && skillIDs == nil {
			return nil
		}

		fields := pref.PreferredFields
		if fields != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM org_pref_fields WHERE org_pref_id = $1`, pref.ID); err != nil {
				return fmt.Errorf("failed to clear preferred fields: %w", err)
			}
		}
		if skillIDs != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM org_pref_skills WHERE org_pref_id = $1`, pref.ID); err != nil {
				return fmt.Errorf("failed to clear required skills: %w", err)
			}
		}
		return insertOrgPrefLinks(ctx, tx, pref.ID, fields, skillIDs)
	})
}
