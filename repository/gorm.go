// Package repository backs the engine's store interfaces with GORM over
// Postgres. Lookups translate gorm.ErrRecordNotFound into (nil, nil) so
// the engine can treat missing configuration as "closed".
package repository

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"

	"gorm.io/gorm"

	"github.com/bookwell/availability-engine/engine"
	"github.com/bookwell/availability-engine/models"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Worker(ctx context.Context, workerID uint) (*models.Worker, error) {
	var worker models.Worker
	err := s.db.WithContext(ctx).First(&worker, workerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

func (s *Store) Business(ctx context.Context, businessID uint) (*models.Business, error) {
	var business models.Business
	err := s.db.WithContext(ctx).First(&business, businessID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &business, nil
}

func (s *Store) BusinessHours(ctx context.Context, businessID uint, day models.DayOfWeek) (*models.BusinessHours, error) {
	var hours models.BusinessHours
	err := s.db.WithContext(ctx).
		Where("business_id = ? AND day_of_week = ?", businessID, day).
		First(&hours).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hours, nil
}

func (s *Store) WorkerAvailability(ctx context.Context, workerID uint, day models.DayOfWeek) (*models.WorkerAvailability, error) {
	var availability models.WorkerAvailability
	err := s.db.WithContext(ctx).
		Where("worker_id = ? AND day_of_week = ?", workerID, day).
		First(&availability).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &availability, nil
}

func (s *Store) BlockedDates(ctx context.Context, workerID uint, date string) ([]models.WorkerBlockedDate, error) {
	var blocked []models.WorkerBlockedDate
	err := s.db.WithContext(ctx).
		Where("worker_id = ? AND date = ?", workerID, date).
		Find(&blocked).Error
	if err != nil {
		return nil, err
	}
	return blocked, nil
}

func (s *Store) Service(ctx context.Context, serviceID uint) (*models.Service, error) {
	var service models.Service
	err := s.db.WithContext(ctx).First(&service, serviceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (s *Store) ServiceAssignedTo(ctx context.Context, serviceID, workerID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Table("service_workers").
		Where("service_id = ? AND worker_id = ?", serviceID, workerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) ActiveBookings(ctx context.Context, workerID uint, date string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Where("worker_id = ? AND date = ? AND status IN ?", workerID, date,
			[]models.BookingStatus{models.StatusPending, models.StatusConfirmed}).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *Store) CreateBooking(ctx context.Context, booking *models.Booking) error {
	return s.db.WithContext(ctx).Create(booking).Error
}

// WithWorkerDateLock serializes reservations for one (worker, date)
// pair with a transactional advisory lock. The lock is released when the
// transaction commits or rolls back, and unrelated worker/date pairs are
// never serialized against each other.
func (s *Store) WithWorkerDateLock(ctx context.Context, workerID uint, date string, fn func(tx engine.BookingStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", lockKey(workerID, date)).Error; err != nil {
			return fmt.Errorf("acquire worker/date lock: %w", err)
		}
		return fn(&Store{db: tx})
	})
}

func lockKey(workerID uint, date string) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d/%s", workerID, date)
	return int64(h.Sum64())
}
