package models

import (
	"gorm.io/gorm"
)

// Business holds the booking policy fields the engine reads. Profile,
// photos and contact details belong to the CRUD layer and never reach
// this service.
type Business struct {
	gorm.Model
	Name          string `json:"name"`
	BufferMinutes int    `json:"buffer_minutes" gorm:"default:0"`
	AutoConfirm   bool   `json:"auto_confirm" gorm:"default:false"`
}
