package repository

import (
	"context"

	"drivefleet/internal/domain/entity"

	"github.com/google/uuid"
)

// CustomerRepository defines the operations for customer role records.
type CustomerRepository interface {
	// FindByID retrieves a customer with its identity joined.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// ExistsByCPF reports whether the cpf is already bound to a customer.
	ExistsByCPF(ctx context.Context, cpf string) (bool, error)

	// ExistsByPhone reports whether the phone is already bound to a customer.
	ExistsByPhone(ctx context.Context, phone string) (bool, error)

	// Create persists a new customer record.
	Create(ctx context.Context, customer *entity.Customer) error

	// ListActive returns customers whose identity is still ACTIVE, in insertion order.
	ListActive(ctx context.Context) ([]*entity.Customer, error)
}
