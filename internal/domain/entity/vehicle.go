package entity

import (
	"time"

	domainerrors "drivefleet/internal/domain/errors"

	"github.com/google/uuid"
)

// VehicleStatus is the availability state of a vehicle in the catalog.
type VehicleStatus string

const (
	VehicleStatusAvailable VehicleStatus = "AVAILABLE"
	VehicleStatusReserved  VehicleStatus = "RESERVED"
	VehicleStatusSold      VehicleStatus = "SOLD"
)

// MinVehicleYear is the lower bound for both manufacture and model years.
const MinVehicleYear = 1900

// Vehicle is an inventory record. At most one non-cancelled sales order may
// reference a vehicle at any time; the catalog's status field gates that.
type Vehicle struct {
	ID              uuid.UUID
	Brand           string
	Model           string
	YearManufacture int
	YearModel       int
	Plate           string // Globally unique.
	Color           string
	Mileage         float64
	Price           float64
	Status          VehicleStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate checks the field-level constraints of a vehicle record.
func (v *Vehicle) Validate() error {
	if v.YearManufacture < MinVehicleYear || v.YearModel < MinVehicleYear {
		return domainerrors.ErrValidationFailed.WithDetails("vehicle years must be 1900 or later")
	}
	if v.Mileage < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("mileage cannot be negative")
	}
	if v.Price <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("price must be greater than zero")
	}

	return nil
}

// Reserve moves the vehicle from AVAILABLE to RESERVED.
func (v *Vehicle) Reserve() error {
	if v.Status != VehicleStatusAvailable {
		return domainerrors.ErrVehicleNotAvailable
	}
	v.Status = VehicleStatusReserved

	return nil
}

// Release reverts a reservation after an order is cancelled.
func (v *Vehicle) Release() error {
	if v.Status != VehicleStatusReserved {
		return domainerrors.ErrInvalidTransition.WithDetails("only a reserved vehicle can be released")
	}
	v.Status = VehicleStatusAvailable

	return nil
}

// MarkSold finalizes a reservation after an order is concluded.
func (v *Vehicle) MarkSold() error {
	if v.Status != VehicleStatusReserved {
		return domainerrors.ErrInvalidTransition.WithDetails("only a reserved vehicle can be sold")
	}
	v.Status = VehicleStatusSold

	return nil
}
