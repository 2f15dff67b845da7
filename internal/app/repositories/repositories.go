// Package repositories implements PostgreSQL persistence for the domain
// entities.
package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kmoeti/attachtrack/internal/app/models"
)

// psql builds queries with PostgreSQL positional placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// IStudentRepository persists student accounts
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, studentID string) (*models.Student, error)
	List(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	UpdatePassword(ctx context.Context, studentID, passwordHash string) error
	Delete(ctx context.Context, studentID string) error
}

// IOrganisationRepository persists organisation accounts
type IOrganisationRepository interface {
	Create(ctx context.Context, org *models.Organisation) error
	GetByID(ctx context.Context, orgID int64) (*models.Organisation, error)
	GetByEmail(ctx context.Context, contactEmail string) (*models.Organisation, error)
	GetByName(ctx context.Context, orgName string) (*models.Organisation, error)
	List(ctx context.Context) ([]*models.Organisation, error)
	Update(ctx context.Context, org *models.Organisation) error
	UpdatePassword(ctx context.Context, orgID int64, passwordHash string) error
	Delete(ctx context.Context, orgID int64) error
}

// IAdminRepository persists administrator accounts
type IAdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	UpdateLastLogin(ctx context.Context, adminID int64) error
}

// ICatalogRepository serves the industry and skill catalogs
type ICatalogRepository interface {
	ListIndustries(ctx context.Context) ([]models.Industry, error)
	ListSkills(ctx context.Context) ([]models.Skill, error)
	GetIndustriesByIDs(ctx context.Context, ids []int64) ([]models.Industry, error)
	GetSkillsByIDs(ctx context.Context, ids []int64) ([]models.Skill, error)
	EnsureIndustry(ctx context.Context, name string) error
	EnsureSkill(ctx context.Context, name string) error
}

// IStudentPreferenceRepository persists student placement preferences
type IStudentPreferenceRepository interface {
	Create(ctx context.Context, pref *models.StudentPreference, industryIDs, skillIDs []int64) error
	GetByID(ctx context.Context, prefID string) (*models.StudentPreference, error)
	ListByStudent(ctx context.Context, studentID string) ([]*models.StudentPreference, error)
	ListAll(ctx context.Context) ([]*models.StudentPreference, error)
	Update(ctx context.Context, pref *models.StudentPreference, industryIDs, skillIDs []int64) error
}

// IOrganisationPreferenceRepository persists organisation hiring preferences
type IOrganisationPreferenceRepository interface {
	Create(ctx context.Context, pref *models.OrganisationPreference, skillIDs []int64) error
	GetByID(ctx context.Context, id int64) (*models.OrganisationPreference, error)
	ListByOrganisation(ctx context.Context, orgID int64) ([]*models.OrganisationPreference, error)
	Update(ctx context.Context, pref *models.OrganisationPreference, skillIDs []int64) error
}

// IMatchRepository persists manual matches
type IMatchRepository interface {
	Upsert(ctx context.Context, match *models.StudentMatch) (created bool, err error)
	GetByPreference(ctx context.Context, studentPrefID string) (*models.StudentMatch, error)
}

// ILogbookRepository persists weekly logbook entries
type ILogbookRepository interface {
	Create(ctx context.Context, log *models.Logbook) error
	GetByID(ctx context.Context, logID string) (*models.Logbook, error)
	ListByOrganisation(ctx context.Context, orgID int64) ([]*models.Logbook, error)
	MarkViewed(ctx context.Context, logID string, viewedAt time.Time) (*models.Logbook, error)
}

// Container holds every repository implementation
type Container struct {
	Students                IStudentRepository
	Organisations           IOrganisationRepository
	Admins                  IAdminRepository
	Catalog                 ICatalogRepository
	StudentPreferences      IStudentPreferenceRepository
	OrganisationPreferences IOrganisationPreferenceRepository
	Matches                 IMatchRepository
	Logbooks                ILogbookRepository
}

// NewContainer wires all repositories over one connection pool
func NewContainer(pool *pgxpool.Pool) *Container {
	return &Container{
		Students:                NewStudentRepository(pool),
		Organisations:           NewOrganisationRepository(pool),
		Admins:                  NewAdminRepository(pool),
		Catalog:                 NewCatalogRepository(pool),
		StudentPreferences:      NewStudentPreferenceRepository(pool),
		OrganisationPreferences: NewOrganisationPreferenceRepository(pool),
		Matches:                 NewMatchRepository(pool),
		Logbooks:                NewLogbookRepository(pool),
	}
}
