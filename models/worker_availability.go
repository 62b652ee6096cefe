package models

import (
	"gorm.io/gorm"
)

// WorkerAvailability is a worker's weekly window, one row per worker per
// weekday. A missing row or IsActive=false makes the worker unavailable
// that weekday regardless of business hours.
type WorkerAvailability struct {
	gorm.Model
	WorkerID  uint      `json:"worker_id" gorm:"index:idx_worker_day"`
	Worker    Worker    `json:"-" gorm:"foreignKey:WorkerID"`
	DayOfWeek DayOfWeek `json:"day_of_week" gorm:"index:idx_worker_day"`
	StartTime string    `json:"start_time"` // Format "HH:MM" in 24h
	EndTime   string    `json:"end_time"`   // Format "HH:MM" in 24h
	IsActive  bool      `json:"is_active" gorm:"default:true"`
}
