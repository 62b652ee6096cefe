package cron

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/bookwell/availability-engine/db"
	"github.com/bookwell/availability-engine/metrics"
	"github.com/bookwell/availability-engine/models"
)

// StartCronJobs runs the booking status sweeper every minute.
func StartCronJobs() {
	c := cron.New()
	_, err := c.AddFunc("* * * * *", sweepBookingStatuses)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to add cron job")
	}
	c.Start()
	log.Info().Msg("cron scheduler started for booking status sweeps")
}

// sweepBookingStatuses finishes bookings the clock has passed: confirmed
// bookings whose end time is behind us become completed, and pending
// bookings nobody confirmed before their start time are cancelled. Both
// are valid transitions, so bulk updates are safe here.
func sweepBookingStatuses() {
	now := time.Now()
	today := now.Format("2006-01-02")
	clock := now.Format("15:04")

	completed := db.DB.Model(&models.Booking{}).
		Where("status = ?", models.StatusConfirmed).
		Where("date < ? OR (date = ? AND end_time <= ?)", today, today, clock).
		Update("status", models.StatusCompleted)
	if completed.Error != nil {
		log.Error().Err(completed.Error).Msg("failed to complete past bookings")
	} else if completed.RowsAffected > 0 {
		metrics.AddStatusSweep(string(models.StatusCompleted), completed.RowsAffected)
		log.Info().Int64("count", completed.RowsAffected).Msg("completed past bookings")
	}

	cancelled := db.DB.Model(&models.Booking{}).
		Where("status = ?", models.StatusPending).
		Where("date < ? OR (date = ? AND start_time <= ?)", today, today, clock).
		Update("status", models.StatusCancelled)
	if cancelled.Error != nil {
		log.Error().Err(cancelled.Error).Msg("failed to cancel stale pending bookings")
	} else if cancelled.RowsAffected > 0 {
		metrics.AddStatusSweep(string(models.StatusCancelled), cancelled.RowsAffected)
		log.Info().Int64("count", cancelled.RowsAffected).Msg("cancelled stale pending bookings")
	}
}
