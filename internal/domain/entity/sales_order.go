package entity

import (
	"time"

	domainerrors "drivefleet/internal/domain/errors"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of a sales order.
// CONCLUDED and CANCELLED are terminal.
type OrderStatus string

const (
	OrderStatusOpen      OrderStatus = "OPEN"
	OrderStatusConcluded OrderStatus = "CONCLUDED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// SalesOrder is the central aggregate: exactly one seller, one customer and one
// vehicle, with at most one payment. TotalValue snapshots the vehicle price at
// creation time; later price changes never touch a closed order's total.
type SalesOrder struct {
	ID             uuid.UUID
	CreationDate   time.Time
	ConclusionDate *time.Time // nil while the order is OPEN.
	TotalValue     float64
	Status         OrderStatus
	SellerID       uuid.UUID
	CustomerID     uuid.UUID
	VehicleID      uuid.UUID
	Seller         *Seller   // Loaded references; nil when not joined.
	Customer       *Customer //
	Vehicle        *Vehicle  //
	Payment        *Payment  // nil until a payment is recorded.
}

// IsOpen reports whether the order can still be mutated.
func (o *SalesOrder) IsOpen() bool {
	return o.Status == OrderStatusOpen
}

// Conclude closes the order after an approved payment.
func (o *SalesOrder) Conclude(now time.Time) error {
	if !o.IsOpen() {
		return domainerrors.ErrOrderNotOpen
	}
	o.Status = OrderStatusConcluded
	o.ConclusionDate = &now

	return nil
}

// Cancel terminates an open order.
func (o *SalesOrder) Cancel(now time.Time) error {
	if !o.IsOpen() {
		return domainerrors.ErrOrderNotOpen
	}
	o.Status = OrderStatusCancelled
	o.ConclusionDate = &now

	return nil
}
