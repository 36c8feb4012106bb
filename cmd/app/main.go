package main

import (
	"dormy/config"
	"dormy/di"
	"dormy/helper"
	"dormy/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Dormy API
// @version 1.0
// @description Boarding house listings, reservations and landlord verification.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
