package usecase

import (
	"context"

	"drivefleet/internal/domain/entity"

	"github.com/google/uuid"
)

// AddVehicleInput defines the data required to add a vehicle to the catalog.
type AddVehicleInput struct {
	Brand           string
	Model           string
	YearManufacture int
	YearModel       int
	Plate           string
	Color           string
	Mileage         float64
	Price           float64
}

// VehicleUsecase is the vehicle catalog: inventory records and their
// availability status.
type VehicleUsecase interface {
	// Add registers a vehicle with status AVAILABLE.
	Add(ctx context.Context, input *AddVehicleInput) (*entity.Vehicle, error)

	// GetByID looks up a vehicle.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)

	// List returns the whole catalog.
	List(ctx context.Context) ([]*entity.Vehicle, error)

	// Reserve transitions AVAILABLE -> RESERVED.
	Reserve(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)

	// Release transitions RESERVED -> AVAILABLE (order cancellation).
	Release(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)

	// MarkSold transitions RESERVED -> SOLD (order conclusion).
	MarkSold(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
}
