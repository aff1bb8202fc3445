// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole classifies what kind of actor an identity represents.
type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleSeller   UserRole = "SELLER"
	RoleAdmin    UserRole = "ADMIN"
)

// Valid reports whether the role is one of the known values.
func (r UserRole) Valid() bool {
	switch r {
	case RoleCustomer, RoleSeller, RoleAdmin:
		return true
	}

	return false
}

// UserStatus is the lifecycle state of an identity record.
// EXCLUDED is terminal; there is no un-delete path.
type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusExcluded UserStatus = "EXCLUDED"
)

// User is the shared identity record underlying both the customer and seller roles.
// Role records (Customer, Seller) compose a User via its ID; they are not subtypes.
type User struct {
	ID           uuid.UUID  // The unique identifier for the identity record.
	Name         string     // Display name.
	Email        string     // Globally unique login identifier, matched case-sensitively.
	PasswordHash string     // Opaque one-way hash produced by the injected hasher.
	Role         UserRole   // Fixed at registration; modification requests ignore it.
	Status       UserStatus // ACTIVE until excluded; EXCLUDED is terminal.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive reports whether the identity may still act in the system.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// Exclude soft-deletes the identity. Excluding an already-excluded
// identity is a no-op rather than an error.
func (u *User) Exclude() {
	u.Status = UserStatusExcluded
}
