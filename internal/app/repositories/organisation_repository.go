package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kmoeti/attachtrack/internal/db"
	"github.com/kmoeti/attachtrack/internal/pkg/apperrors"
	"github.com/kmoeti/attachtrack/internal/pkg/dberrors"

	"github.com/kmoeti/attachtrack/internal/app/models"
)

// OrganisationRepository implements IOrganisationRepository over PostgreSQL
type OrganisationRepository struct {
	pool *pgxpool.Pool
}

// NewOrganisationRepository creates a new organisation repository
func NewOrganisationRepository(pool *pgxpool.Pool) *OrganisationRepository {
	return &OrganisationRepository{pool: pool}
}

const organisationSelect = `
	SELECT o.org_id, o.org_name, o.industry_id, i.name, o.location_id,
	       l.street, l.plot_no, o.contact_no, o.contact_email,
	       o.password_hash, o.created_at
	FROM organisations o
	JOIN industries i ON i.id = o.industry_id
	JOIN locations l ON l.id = o.location_id`

func scanOrganisation(row pgx.Row) (*models.Organisation, error) {
	var o models.Organisation
	err := row.Scan(
		&o.OrgID, &o.OrgName, &o.IndustryID, &o.IndustryName, &o.LocationID,
		&o.Street, &o.PlotNo, &o.ContactNo, &o.ContactEmail,
		&o.PasswordHash, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func mapOrganisationConstraint(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, "organisations_org_name_key"):
		return apperrors.ErrOrgNameAlreadyExists
	case dberrors.IsDuplicateConstraintError(err, "organisations_contact_email_key"):
		return apperrors.ErrEmailAlreadyExists
	case dberrors.IsDuplicateConstraintError(err, "organisations_contact_no_key"):
		return apperrors.ErrPhoneAlreadyExists
	}
	return err
}

// resolveLocation returns the id of the (street, plot_no) row, creating it
// when absent. A concurrent insert of the same address is absorbed by the
// unique constraint, so the follow-up select always finds the row.
func resolveLocation(ctx context.Context, tx pgx.Tx, street, plotNo string) (int64, error) {
	_, err := tx.Exec(ctx,
		`INSERT INTO locations (street, plot_no) VALUES ($1, $2)
		 ON CONFLICT (street, plot_no) DO NOTHING`,
		street, plotNo)
	if err != nil {
		return 0, fmt.Errorf("failed to record location: %w", err)
	}

	var id int64
	err = tx.QueryRow(ctx,
		`SELECT id FROM locations WHERE street = $1 AND plot_no = $2`,
		street, plotNo).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve location: %w", err)
	}
	return id, nil
}

// Create inserts a new organisation, recording its address first
func (r *OrganisationRepository) Create(ctx context.Context, org *models.Organisation) error {
	return db.WithTransaction(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		locationID, err := resolveLocation(ctx, tx, org.Street, org.PlotNo)
		if err != nil {
			return err
		}
		org.LocationID = locationID

		err = tx.QueryRow(ctx,
			`INSERT INTO organisations
			   (org_name, industry_id, location_id, contact_no, contact_email, password_hash, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING org_id`,
			org.OrgName, org.IndustryID, org.LocationID,
			org.ContactNo, org.ContactEmail, org.PasswordHash, org.CreatedAt,
		).Scan(&org.OrgID)
		if err != nil {
			return mapOrganisationConstraint(err)
		}
		return nil
	})
}

// GetByID fetches an organisation by id
func (r *OrganisationRepository) GetByID(ctx context.Context, orgID int64) (*models.Organisation, error) {
	org, err := scanOrganisation(r.pool.QueryRow(ctx, organisationSelect+` WHERE o.org_id = $1`, orgID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOrganisationNotFound
		}
		return nil, fmt.Errorf("failed to fetch organisation: %w", err)
	}
	return org, nil
}

// GetByEmail fetches an organisation by contact email
func (r *OrganisationRepository) GetByEmail(ctx context.Context, contactEmail string) (*models.Organisation, error) {
	org, err := scanOrganisation(r.pool.QueryRow(ctx, organisationSelect+` WHERE o.contact_email = $1`, contactEmail))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOrganisationNotFound
		}
		return nil, fmt.Errorf("failed to fetch organisation: %w", err)
	}
	return org, nil
}

// GetByName fetches an organisation by its unique name
func (r *OrganisationRepository) GetByName(ctx context.Context, orgName string) (*models.Organisation, error) {
	org, err := scanOrganisation(r.pool.QueryRow(ctx, organisationSelect+` WHERE o.org_name = $1`, orgName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOrganisationNotFound
		}
		return nil, fmt.Errorf("failed to fetch organisation: %w", err)
	}
	return org, nil
}

// List returns all organisations ordered by name
func (r *OrganisationRepository) List(ctx context.Context) ([]*models.Organisation, error) {
	rows, err := r.pool.Query(ctx, organisationSelect+` ORDER BY o.org_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list organisations: %w", err)
	}
	defer rows.Close()

	orgs := make([]*models.Organisation, 0)
	for rows.Next() {
		org, err := scanOrganisation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan organisation row: %w", err)
		}
		orgs = append(orgs, org)
	}
	return orgs, rows.Err()
}

// Update rewrites the mutable profile fields, re-resolving the address
func (r *OrganisationRepository) Update(ctx context.Context, org *models.Organisation) error {
	return db.WithTransaction(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		locationID, err := resolveLocation(ctx, tx, org.Street, org.PlotNo)
		if err != nil {
			return err
		}
		org.LocationID = locationID

		tag, err := tx.Exec(ctx,
			`UPDATE organisations
			 SET org_name = $1, industry_id = $2, location_id = $3,
			     contact_no = $4, contact_email = $5
			 WHERE org_id = $6`,
			org.OrgName, org.IndustryID, org.LocationID,
			org.ContactNo, org.ContactEmail, org.OrgID)
		if err != nil {
			return mapOrganisationConstraint(err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrOrganisationNotFound
		}
		return nil
	})
}

// UpdatePassword replaces the stored credential hash
func (r *OrganisationRepository) UpdatePassword(ctx context.Context, orgID int64, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE organisations SET password_hash = $1 WHERE org_id = $2`,
		passwordHash, orgID)
	if err != nil {
		return fmt.Errorf("failed to update organisation password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrOrganisationNotFound
	}
	return nil
}

// Delete removes an organisation and, via cascade, its preferences and matches
func (r *OrganisationRepository) Delete(ctx context.Context, orgID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM organisations WHERE org_id = $1`, orgID)
	if err != nil {
		return fmt.Errorf("failed to delete organisation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrOrganisationNotFound
	}
	return nil
}
