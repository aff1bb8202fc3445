package entity

import (
	"time"

	"github.com/google/uuid"
)

// Registration numbers are drawn uniformly from the 8-digit range.
const (
	RegistrationNumberMin int64 = 10_000_000
	RegistrationNumberMax int64 = 99_999_999
)

// Seller binds exactly one identity record to the seller role.
// The registration number is system-generated at creation and never changes,
// regardless of what an update request carries.
type Seller struct {
	ID                 uuid.UUID
	UserID             uuid.UUID // 1:1 link to the owned identity record, unique in the store.
	User               *User     // Loaded identity; nil when not joined.
	RegistrationNumber int64     // Globally unique 8-digit number.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
