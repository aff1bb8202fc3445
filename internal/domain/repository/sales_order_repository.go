package repository

import (
	"context"

	"drivefleet/internal/domain/entity"

	"github.com/google/uuid"
)

// SalesOrderRepository defines the operations for sales orders.
// The seller/customer/vehicle "owned collections" of the original model are
// realized as indexed lookups on the order's foreign keys, never as mutable
// collections on the owning side.
type SalesOrderRepository interface {
	// FindByID retrieves an order with its payment joined.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SalesOrder, error)

	// Create persists a new order.
	Create(ctx context.Context, order *entity.SalesOrder) error

	// Update overwrites an existing order (status transitions).
	Update(ctx context.Context, order *entity.SalesOrder) error

	// CountBySellerID counts orders referencing the seller, any status.
	CountBySellerID(ctx context.Context, sellerID uuid.UUID) (int64, error)

	// ListBySellerID returns the orders referencing the seller, with payments joined.
	ListBySellerID(ctx context.Context, sellerID uuid.UUID) ([]*entity.SalesOrder, error)

	// ListByCustomerID returns the orders referencing the customer.
	ListByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.SalesOrder, error)

	// ExistsActiveByVehicleID reports whether any non-cancelled order references the vehicle.
	ExistsActiveByVehicleID(ctx context.Context, vehicleID uuid.UUID) (bool, error)

	// List returns all orders in insertion order.
	List(ctx context.Context) ([]*entity.SalesOrder, error)
}
