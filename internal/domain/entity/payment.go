package entity

import (
	"time"

	domainerrors "drivefleet/internal/domain/errors"

	"github.com/google/uuid"
)

// PaymentMethod is the means by which a payment was attempted.
type PaymentMethod string

const (
	PaymentMethodPix    PaymentMethod = "PIX"
	PaymentMethodCard   PaymentMethod = "CARD"
	PaymentMethodBoleto PaymentMethod = "BOLETO"
)

// Valid reports whether the method is one of the known values.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodPix, PaymentMethodCard, PaymentMethodBoleto:
		return true
	}

	return false
}

// PaymentStatus is the outcome of a payment attempt.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusApproved PaymentStatus = "APPROVED"
	PaymentStatusRejected PaymentStatus = "REJECTED"
)

// Valid reports whether the status is one of the known values.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusApproved, PaymentStatusRejected:
		return true
	}

	return false
}

// Payment records a payment attempt tied 1:1 to a sales order.
// An order gets at most one payment ever; re-submission is rejected, never overwritten.
type Payment struct {
	ID           uuid.UUID
	PaymentDate  time.Time // Date-granularity; never in the future.
	Price        float64
	Method       PaymentMethod
	Status       PaymentStatus
	SalesOrderID uuid.UUID
	CreatedAt    time.Time
}

// Validate checks the ledger's field-level constraints. Cross-entity rules
// (order open, no prior payment) are the coordinator's responsibility.
func (p *Payment) Validate(now time.Time) error {
	if p.Price <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("payment price must be greater than zero")
	}
	if !p.Method.Valid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown payment method")
	}
	if !p.Status.Valid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown payment status")
	}
	// Compare at day granularity so a payment dated today always passes.
	today := now.Truncate(24 * time.Hour).Add(24 * time.Hour)
	if !p.PaymentDate.Before(today) {
		return domainerrors.ErrValidationFailed.WithDetails("payment date cannot be in the future")
	}

	return nil
}
