// Package seed fills the catalog tables and creates the initial
// administrator on first start.
package seed

import (
	"context"
	"errors"
	"os"

	"github.com/kmoeti/attachtrack/internal/pkg/apperrors"
	"github.com/kmoeti/attachtrack/internal/pkg/auth"
	"github.com/kmoeti/attachtrack/internal/pkg/clock"
	"github.com/kmoeti/attachtrack/internal/pkg/logger"

	"github.com/kmoeti/attachtrack/internal/app/models"
	"github.com/kmoeti/attachtrack/internal/app/repositories"
)

var defaultIndustries = []string{
	"Agriculture",
	"Construction",
	"Education",
	"Finance",
	"Healthcare",
	"Hospitality",
	"Information Technology",
	"Manufacturing",
	"Mining",
	"Retail",
	"Telecommunications",
	"Transport and Logistics",
}

var defaultSkills = []string{
	"Accounting",
	"Customer Service",
	"Data Analysis",
	"Database Administration",
	"Marketing",
	"Network Administration",
	"Project Management",
	"Report Writing",
	"Software Development",
	"Technical Support",
}

// Run seeds catalog defaults and the initial admin account. It is safe to
// call on every start.
func Run(ctx context.Context, repos *repositories.Container) error {
	for _, name := range defaultIndustries {
		if err := repos.Catalog.EnsureIndustry(ctx, name); err != nil {
			return err
		}
	}
	for _, name := range defaultSkills {
		if err := repos.Catalog.EnsureSkill(ctx, name); err != nil {
			return err
		}
	}

	return seedInitialAdmin(ctx, repos)
}

// seedInitialAdmin creates a bootstrap administrator when none exists.
// Credentials come from the environment so no default password ships in
// the binary.
func seedInitialAdmin(ctx context.Context, repos *repositories.Container) error {
	email := os.Getenv("INITIAL_ADMIN_EMAIL")
	password := os.Getenv("INITIAL_ADMIN_PASSWORD")
	if email == "" || password == "" {
		logger.Debug().Msg("Initial admin credentials not configured, skipping")
		return nil
	}

	if _, err := repos.Admins.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, apperrors.ErrAdminNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		FirstName:    "System",
		LastName:     "Administrator",
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    clock.System{}.Now(),
	}
	if err := repos.Admins.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return err
	}

	logger.Info().Str("email", email).Msg("Initial admin created")
	return nil
}
