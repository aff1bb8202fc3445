package repository

import (
	"context"

	"drivefleet/internal/domain/entity"

	"github.com/google/uuid"
)

// VehicleRepository defines the operations for the vehicle catalog.
type VehicleRepository interface {
	// FindByID retrieves a single vehicle.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)

	// ExistsByPlate reports whether the plate is already registered.
	ExistsByPlate(ctx context.Context, plate string) (bool, error)

	// Create persists a new vehicle record.
	Create(ctx context.Context, vehicle *entity.Vehicle) error

	// Update overwrites an existing vehicle record (status transitions).
	Update(ctx context.Context, vehicle *entity.Vehicle) error

	// List returns the whole catalog in insertion order.
	List(ctx context.Context) ([]*entity.Vehicle, error)
}
