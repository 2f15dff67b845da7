package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kmoeti/attachtrack/internal/pkg/apperrors"

	"github.com/kmoeti/attachtrack/internal/app/models"
)

// MatchRepository implements IMatchRepository over PostgreSQL
type MatchRepository struct {
	pool *pgxpool.Pool
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(pool *pgxpool.Pool) *MatchRepository {
	return &MatchRepository{pool: pool}
}

// Upsert inserts or replaces the match for a student preference in a single
// statement, so concurrent matches of the same preference never produce two
// rows. xmax = 0 is true only for a freshly inserted row, which yields the
// created flag.
func (r *MatchRepository) Upsert(ctx context.Context, match *models.StudentMatch) (bool, error) {
	var created bool
	err := r.pool.QueryRow(ctx,
		`INSERT INTO student_matches (student_pref_id, org_id, matched_at, admin_note)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (student_pref_id)
		 DO UPDATE SET org_id = EXCLUDED.org_id,
		               matched_at = EXCLUDED.matched_at,
		               admin_note = EXCLUDED.admin_note
		 RETURNING id, (xmax = 0)`,
		match.StudentPrefID, match.OrgID, match.MatchedAt, match.AdminNote,
	).Scan(&match.ID, &created)
	if err != nil {
		return false, fmt.Errorf("failed to upsert match: %w", err)
	}
	return created, nil
}

// GetByPreference fetches the match recorded for a student preference
func (r *MatchRepository) GetByPreference(ctx context.Context, studentPrefID string) (*models.StudentMatch, error) {
	var m models.StudentMatch
	err := r.pool.QueryRow(ctx,
		`SELECT id, student_pref_id, org_id, matched_at, admin_note
		 FROM student_matches WHERE student_pref_id = $1`,
		studentPrefID).Scan(&m.ID, &m.StudentPrefID, &m.OrgID, &m.MatchedAt, &m.AdminNote)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("match")
		}
		return nil, fmt.Errorf("failed to fetch match: %w", err)
	}
	return &m, nil
}
