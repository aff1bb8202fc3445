package model

import (
	"time"

	"github.com/google/uuid"
)

// VehicleModel mirrors the 'vehicles' table.
type VehicleModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Brand           string    `gorm:"type:varchar(100);not null"`
	Model           string    `gorm:"type:varchar(100);not null"`
	YearManufacture int       `gorm:"not null"`
	YearModel       int       `gorm:"not null"`
	Plate           string    `gorm:"type:varchar(10);unique;not null"`
	Color           string    `gorm:"type:varchar(50)"`
	Mileage         float64
	Price           float64 `gorm:"not null"`
	Status          string  `gorm:"type:varchar(20);not null;default:'AVAILABLE'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (VehicleModel) TableName() string {
	return "vehicles"
}
