package repository

import (
	"context"
	"errors"

	"drivefleet/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRegistrationNumberTaken signals a store-level uniqueness conflict on the
// generated registration number. It is retryable with a fresh draw, unlike the
// other uniqueness sentinels.
var ErrRegistrationNumberTaken = errors.New("registration number already taken")

// SellerRepository defines the operations for seller role records.
type SellerRepository interface {
	// FindByID retrieves a seller with its identity joined.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error)

	// ExistsByRegistrationNumber reports whether the number is already taken.
	ExistsByRegistrationNumber(ctx context.Context, number int64) (bool, error)

	// Create persists a new seller record. Implementations surface a
	// registration-number uniqueness conflict as ErrRegistrationNumberTaken
	// so the caller can retry with a fresh draw.
	Create(ctx context.Context, seller *entity.Seller) error

	// ListActive returns sellers whose identity is still ACTIVE, in insertion order.
	ListActive(ctx context.Context) ([]*entity.Seller, error)
}
