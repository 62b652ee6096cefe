package models

import (
	"gorm.io/gorm"
)

// Service is a bookable offering. Workers able to perform it are linked
// through the service_workers join table.
type Service struct {
	gorm.Model
	BusinessID      uint     `json:"business_id" gorm:"index"`
	Business        Business `json:"-" gorm:"foreignKey:BusinessID"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	DurationMinutes int      `json:"duration_minutes"`
	Price           float64  `json:"price"`
	IsActive        bool     `json:"is_active" gorm:"default:true"`
	Workers         []Worker `json:"workers,omitempty" gorm:"many2many:service_workers;"`
}
