package db

import (
	"github.com/rs/zerolog/log"

	"github.com/bookwell/availability-engine/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.Business{},
		&models.BusinessHours{},
		&models.Worker{},
		&models.WorkerAvailability{},
		&models.WorkerBlockedDate{},
		&models.Service{},
		&models.Booking{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	log.Info().Msg("migrations applied")
}
