package main

import (
	"context"

	"luna/config"
	"luna/infras/otel"
	"luna/infras/postgres"
	bookingRepository "luna/internal/domains/booking/repository"
	propertyRepository "luna/internal/domains/property/repository"
	"luna/internal/seed"
	"luna/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	db := postgres.New(cfg)
	defer db.Close()

	ot := otel.New(cfg)

	seeder := seed.New(propertyRepository.New(db, ot), bookingRepository.New(db, ot))

	if _, err := seeder.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed database")
	}
}
