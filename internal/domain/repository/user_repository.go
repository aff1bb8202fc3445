// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"drivefleet/internal/domain/entity"

	"github.com/google/uuid"
)

// Record-absence sentinels, one per store. Repositories return these so the
// application layer can translate them into the domain error taxonomy.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrSellerNotFound   = errors.New("seller not found")
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrOrderNotFound    = errors.New("sales order not found")
	ErrPaymentNotFound  = errors.New("payment not found")
)

// UserRepository defines the standard operations for identity persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single identity by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single identity by its exact (case-sensitive) email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail reports whether any identity already holds the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new identity record.
	Create(ctx context.Context, user *entity.User) error

	// Update overwrites an existing identity record.
	Update(ctx context.Context, user *entity.User) error
}
