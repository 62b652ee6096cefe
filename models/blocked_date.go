package models

import (
	"gorm.io/gorm"
)

// WorkerBlockedDate removes availability on one calendar date. Nil
// StartTime/EndTime blocks the whole day, otherwise only that window.
// Rows are created and deleted, never updated in place.
type WorkerBlockedDate struct {
	gorm.Model
	WorkerID  uint    `json:"worker_id" gorm:"index:idx_blocked_worker_date"`
	Worker    Worker  `json:"-" gorm:"foreignKey:WorkerID"`
	Date      string  `json:"date" gorm:"index:idx_blocked_worker_date"` // Format "YYYY-MM-DD"
	StartTime *string `json:"start_time"`                                // Format "HH:MM", nil = full day
	EndTime   *string `json:"end_time"`
	Reason    string  `json:"reason"`
}

// FullDay reports whether the row blocks the entire date.
func (b *WorkerBlockedDate) FullDay() bool {
	return b.StartTime == nil || b.EndTime == nil
}
