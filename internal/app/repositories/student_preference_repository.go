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

// StudentPreferenceRepository implements IStudentPreferenceRepository over
// PostgreSQL
type StudentPreferenceRepository struct {
	pool *pgxpool.Pool
}

// NewStudentPreferenceRepository creates a new student preference repository
func NewStudentPreferenceRepository(pool *pgxpool.Pool) *StudentPreferenceRepository {
	return &StudentPreferenceRepository{pool: pool}
}

// nextPrefID advances the per-student counter and derives the preference id.
// The single-statement upsert keeps the counter atomic under concurrent
// creations, so two transactions never observe the same sequence value.
func nextPrefID(ctx context.Context, tx pgx.Tx, studentID string) (string, error) {
	var seq int
	err := tx.QueryRow(ctx,
		`INSERT INTO student_pref_sequences (student_id, last_seq)
		 VALUES ($1, 1)
		 ON CONFLICT (student_id)
		 DO UPDATE SET last_seq = student_pref_sequences.last_seq + 1
		 RETURNING last_seq`,
		studentID).Scan(&seq)
	if err != nil {
		return "", fmt.Errorf("failed to advance preference sequence: %w", err)
	}
	return fmt.Sprintf("%s_PREF%03d", studentID, seq), nil
}

// Create inserts a preference with its industry and skill links in one
// transaction. The derived id is written back into pref.PrefID.
func (r *StudentPreferenceRepository) Create(ctx context.Context, pref *models.StudentPreference, industryIDs, skillIDs []int64) error {
	return db.WithTransaction(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		prefID, err := nextPrefID(ctx, tx, pref.StudentID)
		if err != nil {
			return err
		}
		pref.PrefID = prefID

		_, err = tx.Exec(ctx,
			`INSERT INTO student_preferences
			   (pref_id, student_id, pref_location, available_from, available_to, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			pref.PrefID, pref.StudentID, pref.PrefLocation,
			pref.AvailableFrom, pref.AvailableTo, pref.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to create preference: %w", err)
		}

		return insertStudentPrefLinks(ctx, tx, pref.PrefID, industryIDs, skillIDs)
	})
}

func insertStudentPrefLinks(ctx context.Context, tx pgx.Tx, prefID string, industryIDs, skillIDs []int64) error {
	for _, id := range industryIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO student_pref_industries (pref_id, industry_id) VALUES ($1, $2)`,
			prefID, id)
		if err != nil {
			return fmt.Errorf("failed to link industry %d: %w", id, err)
		}
	}
	for _, id := range skillIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO student_pref_skills (pref_id, skill_id) VALUES ($1, $2)`,
			prefID, id)
		if err != nil {
			return fmt.Errorf("failed to link skill %d: %w", id, err)
		}
	}
	return nil
}

// GetByID fetches a preference with its links
func (r *StudentPreferenceRepository) GetByID(ctx context.Context, prefID string) (*models.StudentPreference, error) {
	var p models.StudentPreference
	err := r.pool.QueryRow(ctx,
		`SELECT pref_id, student_id, pref_location, available_from, available_to, created_at
		 FROM student_preferences WHERE pref_id = $1`,
		prefID).Scan(
		&p.PrefID, &p.StudentID, &p.PrefLocation,
		&p.AvailableFrom, &p.AvailableTo, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPreferenceNotFound
		}
		return nil, fmt.Errorf("failed to fetch preference: %w", err)
	}

	if err := r.attachLinks(ctx, []*models.StudentPreference{&p}); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByStudent returns all preferences of one student, oldest first
func (r *StudentPreferenceRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.StudentPreference, error) {
	return r.list(ctx,
		`SELECT pref_id, student_id, pref_location, available_from, available_to, created_at
		 FROM student_preferences WHERE student_id = $1 ORDER BY pref_id`,
		studentID)
}

// ListAll returns every preference, grouped by student
func (r *StudentPreferenceRepository) ListAll(ctx context.Context) ([]*models.StudentPreference, error) {
	return r.list(ctx,
		`SELECT pref_id, student_id, pref_location, available_from, available_to, created_at
		 FROM student_preferences ORDER BY student_id, pref_id`)
}

func (r *StudentPreferenceRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.StudentPreference, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}
	defer rows.Close()

	prefs := make([]*models.StudentPreference, 0)
	for rows.Next() {
		var p models.StudentPreference
		err := rows.Scan(&p.PrefID, &p.StudentID, &p.PrefLocation,
			&p.AvailableFrom, &p.AvailableTo, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan preference row: %w", err)
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

// attachLinks loads the industry and skill links for a batch of preferences
func (r *StudentPreferenceRepository) attachLinks(ctx context.Context, prefs []*models.StudentPreference) error {
	if len(prefs) == 0 {
		return nil
	}

	ids := make([]string, 0, len(prefs))
	byID := make(map[string]*models.StudentPreference, len(prefs))
	for _, p := range prefs {
		ids = append(ids, p.PrefID)
		byID[p.PrefID] = p
		p.Industries = make([]models.Industry, 0)
		p.Skills = make([]models.Skill, 0)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT spi.pref_id, i.id, i.name
		 FROM student_pref_industries spi
		 JOIN industries i ON i.id = spi.industry_id
		 WHERE spi.pref_id = ANY($1)
		 ORDER BY i.name`, ids)
	if err != nil {
		return fmt.Errorf("failed to load preference industries: %w", err)
	}
	for rows.Next() {
		var prefID string
		var ind models.Industry
		if err := rows.Scan(&prefID, &ind.ID, &ind.Name); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan preference industry: %w", err)
		}
		byID[prefID].Industries = append(byID[prefID].Industries, ind)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.pool.Query(ctx,
		`SELECT sps.pref_id, s.id, s.name
		 FROM student_pref_skills sps
		 JOIN skills s ON s.id = sps.skill_id
		 WHERE sps.pref_id = ANY($1)
		 ORDER BY s.name`, ids)
	if err != nil {
		return fmt.Errorf("failed to load preference skills: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var prefID string
		var sk models.Skill
		if err := rows.Scan(&prefID, &sk.ID, &sk.Name); err != nil {
			return fmt.Errorf("failed to scan preference skill: %w", err)
		}
		byID[prefID].Skills = append(byID[prefID].Skills, sk)
	}
	return rows.Err()
}

// Update rewrites the preference fields and replaces its links
func (r *StudentPreferenceRepository) Update(ctx context.Context, pref *models.StudentPreference, industryIDs, skillIDs []int64) error {
	return db.WithTransaction(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE student_preferences
			 SET pref_location = $1, available_from = $2, available_to = $3
			 WHERE pref_id = $4`,
			pref.PrefLocation, pref.AvailableFrom, pref.AvailableTo, pref.PrefID)
		if err != nil {
			return fmt.Errorf("failed to update preference: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrPreferenceNotFound
		}

		if industryIDs == nil && skillIDs == nil {
			return nil
		}

		if industryIDs != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM student_pref_industries WHERE pref_id = $1`, pref.PrefID); err != nil {
				return fmt.Errorf("failed to clear preference industries: %w", err)
			}
		}
		if skillIDs != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM student_pref_skills WHERE pref_id = $1`, pref.PrefID); err != nil {
				return fmt.Errorf("failed to clear preference skills: %w", err)
			}
		}
		return insertStudentPrefLinks(ctx, tx, pref.PrefID, industryIDs, skillIDs)
	})
}
