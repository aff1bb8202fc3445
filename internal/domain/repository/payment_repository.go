package repository

import (
	"context"

	"drivefleet/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentRepository defines the operations for the payment ledger.
type PaymentRepository interface {
	// FindByOrderID retrieves the payment bound to an order, if any.
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error)

	// ExistsByOrderID reports whether the order already has a payment.
	ExistsByOrderID(ctx context.Context, orderID uuid.UUID) (bool, error)

	// Create persists a new payment. The store's unique constraint on the
	// order reference is the final arbiter of the one-payment-per-order rule.
	Create(ctx context.Context, payment *entity.Payment) error
}
