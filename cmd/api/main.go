package main

import (
	"context"
	"flag"

	"github.com/kmoeti/attachtrack/internal/bootstrap"
	"github.com/kmoeti/attachtrack/internal/pkg/logger"
	"github.com/kmoeti/attachtrack/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the config file")
	migrationsDir := flag.String("migrations", "migrations", "path to the SQL migrations directory")
	flag.Parse()

	app, err := bootstrap.Setup(context.Background(), *configPath, *migrationsDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to start application")
	}
	defer app.DB.Close()

	srv := server.New(app.Config.Server.Port, app.Router)
	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server error")
	}
}
