package usecase

import (
	"context"

	"drivefleet/internal/domain/entity"

	"github.com/google/uuid"
)

// SellerView is a seller together with its order history rendered through the
// sales order coordinator's projection.
type SellerView struct {
	Seller *entity.Seller
	Orders []*OrderSummary
}

// SellerUsecase is the seller side of the role registrar.
type SellerUsecase interface {
	// Create registers the identity and the seller record atomically,
	// generating a unique registration number.
	Create(ctx context.Context, input *UserInput) (*entity.Seller, error)

	// Update forwards the identity fields to the identity store. The
	// registration number is never altered, regardless of the input.
	Update(ctx context.Context, id uuid.UUID, input *UserInput) (*entity.Seller, error)

	// GetByID looks up a seller with its identity.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error)

	// ListActive returns active sellers, each carrying its projected order list.
	ListActive(ctx context.Context) ([]*SellerView, error)

	// Delete excludes the seller's identity. Any linked order, whatever its
	// status, blocks the deletion.
	Delete(ctx context.Context, id uuid.UUID) error
}
