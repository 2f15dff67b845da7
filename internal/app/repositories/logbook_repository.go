package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kmoeti/attachtrack/internal/pkg/apperrors"
	"github.com/kmoeti/attachtrack/internal/pkg/dberrors"

	"github.com/kmoeti/attachtrack/internal/app/models"
)

// LogbookRepository implements ILogbookRepository over PostgreSQL
type LogbookRepository struct {
	pool *pgxpool.Pool
}

// NewLogbookRepository creates a new logbook repository
func NewLogbookRepository(pool *pgxpool.Pool) *LogbookRepository {
	return &LogbookRepository{pool: pool}
}

// Create inserts a logbook entry. A primary-key collision on the random
// log id surfaces as apperrors.ErrDuplicateKey so the caller can retry
// with a fresh code.
func (r *LogbookRepository) Create(ctx context.Context, log *models.Logbook) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO logbooks
		   (log_id, student_id, org_id, week_no, entry, submitted_at, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		log.LogID, log.StudentID, log.OrgID, log.WeekNo,
		log.Entry, log.SubmittedAt, log.Status)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "logbooks_pkey") {
			return apperrors.ErrDuplicateKey
		}
		return fmt.Errorf("failed to create logbook entry: %w", err)
	}
	return nil
}

const logbookSelect = `
	SELECT log_id, student_id, org_id, week_no, entry, submitted_at, status, viewed_at
	FROM logbooks`

func scanLogbook(row pgx.Row) (*models.Logbook, error) {
	var l models.Logbook
	err := row.Scan(&l.LogID, &l.StudentID, &l.OrgID, &l.WeekNo,
		&l.Entry, &l.SubmittedAt, &l.Status, &l.ViewedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// GetByID fetches a logbook entry by its code
func (r *LogbookRepository) GetByID(ctx context.Context, logID string) (*models.Logbook, error) {
	log, err := scanLogbook(r.pool.QueryRow(ctx, logbookSelect+` WHERE log_id = $1`, logID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLogbookNotFound
		}
		return nil, fmt.Errorf("failed to fetch logbook entry: %w", err)
	}
	return log, nil
}

// ListByOrganisation returns an organisation's logbook entries, newest first
func (r *LogbookRepository) ListByOrganisation(ctx context.Context, orgID int64) ([]*models.Logbook, error) {
	rows, err := r.pool.Query(ctx, logbookSelect+` WHERE org_id = $1 ORDER BY submitted_at DESC`, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list logbook entries: %w", err)
	}
	defer rows.Close()

	logs := make([]*models.Logbook, 0)
	for rows.Next() {
		log, err := scanLogbook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan logbook row: %w", err)
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

// MarkViewed transitions an entry to viewed. COALESCE keeps the first
// viewed_at, so repeated calls return the original timestamp unchanged.
func (r *LogbookRepository) MarkViewed(ctx context.Context, logID string, viewedAt time.Time) (*models.Logbook, error) {
	log := &models.Logbook{}
	err := r.pool.QueryRow(ctx,
		`UPDATE logbooks
		 SET status = $1, viewed_at = COALESCE(viewed_at, $2)
		 WHERE log_id = $3
		 RETURNING log_id, student_id, org_id, week_no, entry, submitted_at, status, viewed_at`,
		models.LogbookViewed, viewedAt, logID).Scan(
		&log.LogID, &log.StudentID, &log.OrgID, &log.WeekNo,
		&log.Entry, &log.SubmittedAt, &log.Status, &log.ViewedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLogbookNotFound
		}
		return nil, fmt.Errorf("failed to mark logbook entry viewed: %w", err)
	}
	return log, nil
}
