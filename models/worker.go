package models

import (
	"gorm.io/gorm"
)

// Worker is a person performing services for a business.
type Worker struct {
	gorm.Model
	BusinessID uint     `json:"business_id" gorm:"index"`
	Business   Business `json:"-" gorm:"foreignKey:BusinessID"`
	Name       string   `json:"name"`
	IsActive   bool     `json:"is_active" gorm:"default:true"`
}
