package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// Booking is the only row the engine writes. Date and times are naive
// local strings, matching how the rest of the schedule is stored.
type Booking struct {
	gorm.Model
	Reference  string        `json:"reference" gorm:"uniqueIndex"`
	BusinessID uint          `json:"business_id" gorm:"index"`
	WorkerID   uint          `json:"worker_id" gorm:"index:idx_booking_worker_date"`
	ServiceID  uint          `json:"service_id"`
	ClientID   uint          `json:"client_id"`
	Date       string        `json:"date" gorm:"index:idx_booking_worker_date"` // Format "YYYY-MM-DD"
	StartTime  string        `json:"start_time"`                                // Format "HH:MM" in 24h
	EndTime    string        `json:"end_time"`
	Status     BookingStatus `json:"status"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Reference == "" {
		b.Reference = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = StatusPending
	}
	return nil
}

// Occupies reports whether the booking blocks its time slot. Cancelled
// and no-show bookings free the slot; completed bookings are in the past.
func (b *Booking) Occupies() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanTransition validates a status change. Completed, cancelled and
// no-show are terminal.
func (b *Booking) CanTransition(newStatus BookingStatus) error {
	switch b.Status {
	case StatusPending:
		if newStatus != StatusConfirmed && newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from pending to %s", newStatus)
		}
	case StatusConfirmed:
		if newStatus != StatusCompleted && newStatus != StatusCancelled && newStatus != StatusNoShow {
			return fmt.Errorf("invalid transition from confirmed to %s", newStatus)
		}
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return fmt.Errorf("no transitions allowed from %s", b.Status)
	default:
		return fmt.Errorf("unknown status %s", b.Status)
	}
	return nil
}

// UpdateStatus applies a status transition and persists it. Status
// changes are the only mutation a booking row ever sees.
func (b *Booking) UpdateStatus(tx *gorm.DB, newStatus BookingStatus) error {
	if err := b.CanTransition(newStatus); err != nil {
		return err
	}
	b.Status = newStatus
	return tx.Save(b).Error
}
