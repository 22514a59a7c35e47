package main

import (
	"luna/config"
	"luna/di"
	"luna/helper"
	"luna/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.InitLogger()

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	log.Info().Str("env", cfg.Server.Env).Str("port", cfg.Server.Port).Msg("Starting Luna Shortlets API")

	di.InitializeService().Serve()
}
