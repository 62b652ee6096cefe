package engine

import (
	"context"

	"github.com/bookwell/availability-engine/models"
)

// ScheduleStore reads the rows the aggregator consumes. Lookups return
// (nil, nil) when no row exists; the engine treats missing configuration
// as "closed", never as an error.
type ScheduleStore interface {
	Worker(ctx context.Context, workerID uint) (*models.Worker, error)
	BusinessHours(ctx context.Context, businessID uint, day models.DayOfWeek) (*models.BusinessHours, error)
	WorkerAvailability(ctx context.Context, workerID uint, day models.DayOfWeek) (*models.WorkerAvailability, error)
	BlockedDates(ctx context.Context, workerID uint, date string) ([]models.WorkerBlockedDate, error)
}

// BookingStore reads bookings and policy rows and owns the reservation
// write path. WithWorkerDateLock runs fn inside a critical section
// scoped to one (worker, date) pair; fn receives a store bound to that
// transaction so its reads are fresh.
type BookingStore interface {
	Business(ctx context.Context, businessID uint) (*models.Business, error)
	Service(ctx context.Context, serviceID uint) (*models.Service, error)
	ServiceAssignedTo(ctx context.Context, serviceID, workerID uint) (bool, error)
	ActiveBookings(ctx context.Context, workerID uint, date string) ([]models.Booking, error)
	CreateBooking(ctx context.Context, booking *models.Booking) error
	WithWorkerDateLock(ctx context.Context, workerID uint, date string, fn func(tx BookingStore) error) error
}
