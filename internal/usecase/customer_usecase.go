package usecase

import (
	"context"

	"drivefleet/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCustomerInput defines the data required to register a customer with
// its underlying identity in one atomic operation.
type CreateCustomerInput struct {
	User    UserInput
	CPF     string
	Phone   string
	Address string
}

// CustomerUsecase is the customer side of the role registrar.
type CustomerUsecase interface {
	// Create registers the identity and the customer record atomically;
	// identity creation is rolled back if the customer step fails.
	Create(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error)

	// GetByID looks up a customer with its identity.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// ListActive returns customers whose identity is still ACTIVE.
	ListActive(ctx context.Context) ([]*entity.Customer, error)

	// Delete excludes the customer's identity. Existing orders never block
	// customer deletion; they keep their reference to the excluded record.
	Delete(ctx context.Context, id uuid.UUID) error
}
