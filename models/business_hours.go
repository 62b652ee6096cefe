package models

import (
	"gorm.io/gorm"
)

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// BusinessHours is the weekly opening schedule, one row per business per
// weekday. A missing row or IsClosed=true means the business is closed
// that weekday.
type BusinessHours struct {
	gorm.Model
	BusinessID uint      `json:"business_id" gorm:"index:idx_business_day"`
	Business   Business  `json:"-" gorm:"foreignKey:BusinessID"`
	DayOfWeek  DayOfWeek `json:"day_of_week" gorm:"index:idx_business_day"`
	OpenTime   string    `json:"open_time"`  // Format "HH:MM" in 24h
	CloseTime  string    `json:"close_time"` // Format "HH:MM" in 24h
	IsClosed   bool      `json:"is_closed" gorm:"default:false"`
}
