// Package bootstrap wires configuration, database, services and the HTTP
// router together.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kmoeti/attachtrack/internal/config"
	"github.com/kmoeti/attachtrack/internal/db"
	"github.com/kmoeti/attachtrack/internal/middleware"
	"github.com/kmoeti/attachtrack/internal/pkg/auth"
	"github.com/kmoeti/attachtrack/internal/pkg/clock"
	"github.com/kmoeti/attachtrack/internal/pkg/helpers"
	"github.com/kmoeti/attachtrack/internal/pkg/logger"
	"github.com/kmoeti/attachtrack/internal/seed"

	"github.com/kmoeti/attachtrack/internal/app/controllers"
	"github.com/kmoeti/attachtrack/internal/app/migrations"
	"github.com/kmoeti/attachtrack/internal/app/repositories"
	"github.com/kmoeti/attachtrack/internal/app/routes"
	"github.com/kmoeti/attachtrack/internal/app/services"
)

// Application holds the wired dependencies
type Application struct {
	Config *config.Config
	DB     *db.PostgresDB
	Router *gin.Engine
}

// Setup loads config, connects the database, runs migrations and seeds,
// and builds the router
func Setup(ctx context.Context, configPath, migrationsDir string) (*Application, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
	})

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrations.NewMigrator(database.Pool, migrationsDir).Run(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	repos := repositories.NewContainer(database.Pool)
	if err := seed.Run(ctx, repos); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	router := buildRouter(cfg, repos, jwtService)

	return &Application{Config: cfg, DB: database, Router: router}, nil
}

func buildRouter(cfg *config.Config, repos *repositories.Container, jwtService *auth.JWTService) *gin.Engine {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	clk := clock.System{}

	authService := services.NewAuthService(
		repos.Students, repos.Organisations, repos.Admins, repos.Catalog, jwtService, clk)
	prefService := services.NewPreferenceService(
		repos.Students, repos.Organisations, repos.Catalog,
		repos.StudentPreferences, repos.OrganisationPreferences, clk)

	ctrl := routes.Controllers{
		Auth:         controllers.NewAuthController(authService),
		Student:      controllers.NewStudentController(services.NewStudentService(repos.Students)),
		Organisation: controllers.NewOrganisationController(services.NewOrganisationService(repos.Organisations, repos.Catalog)),
		Catalog:      controllers.NewCatalogController(services.NewCatalogService(repos.Catalog)),
		Preference:   controllers.NewPreferenceController(prefService),
		Match: controllers.NewMatchController(services.NewMatchService(
			repos.StudentPreferences, repos.Organisations, repos.Matches, clk)),
		Logbook: controllers.NewLogbookController(services.NewLogbookService(
			repos.Students, repos.Organisations, repos.Logbooks, clk)),
	}

	routes.Setup(router, ctrl, jwtService)
	return router
}
