// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"drivefleet/internal/domain/entity"
	"drivefleet/internal/domain/repository"

	"github.com/google/uuid"
)

// UserInput carries the identity fields of a registration or modification
// request. Role is honored at registration only; modification ignores it.
type UserInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.UserRole
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput returns the generated token after a successful login.
type LoginOutput struct {
	AccessToken string
	ExpiresIn   time.Duration
	User        *entity.User
}

// UserUsecase is the identity store: it owns the unique identity records that
// the customer and seller registrars wrap.
type UserUsecase interface {
	// Register creates a new ACTIVE identity with a hashed credential.
	Register(ctx context.Context, input *UserInput) (*entity.User, error)

	// Modify overwrites name, email and credential. All-or-nothing: a
	// duplicate email leaves the record unchanged. Role changes are ignored.
	Modify(ctx context.Context, id uuid.UUID, input *UserInput) (*entity.User, error)

	// Exclude soft-deletes the identity. Re-excluding is a silent no-op.
	Exclude(ctx context.Context, id uuid.UUID) error

	// GetByID looks up an identity by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// GetByEmail looks up an identity by exact email.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Login verifies credentials of an active identity and issues an access token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// RegisterTx is Register running against an existing transaction's
	// repositories, for registrars that create identity and role record atomically.
	RegisterTx(ctx context.Context, repoFactory repository.RepositoryFactory, input *UserInput) (*entity.User, error)

	// ModifyTx is Modify running against an existing transaction's repositories.
	ModifyTx(ctx context.Context, repoFactory repository.RepositoryFactory, id uuid.UUID, input *UserInput) (*entity.User, error)

	// ExcludeTx is Exclude running against an existing transaction's repositories.
	ExcludeTx(ctx context.Context, repoFactory repository.RepositoryFactory, id uuid.UUID) error
}
