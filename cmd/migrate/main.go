package main

import (
	"errors"
	"os"

	"luna/config"
	"luna/helper"
	"luna/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action is required: up, down, step-up or drop")
	}

	cfg := config.Get()

	logger.SetLogLevel(cfg)

	if err := helper.Runner(cfg, os.Args[1]); err != nil {
		if errors.Is(err, helper.ErrUnknownAction) {
			log.Fatal().Str("action", os.Args[1]).Msg("Invalid action. Use 'up', 'down', 'step-up' or 'drop'")
		}

		log.Fatal().Err(err).Msg("Migration failed")
	}
}
