package entity

import (
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Customer binds exactly one identity record to the customer role.
// Its orders are reachable through the sales order's customer reference,
// not through a mutable collection owned by the customer.
type Customer struct {
	ID        uuid.UUID
	UserID    uuid.UUID // 1:1 link to the owned identity record, unique in the store.
	User      *User     // Loaded identity; nil when the repository was asked not to join it.
	CPF       string    // Globally unique, exactly 11 digits.
	Phone     string    // Globally unique, exactly 11 digits.
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsElevenDigits validates the fixed-width numeric fields (cpf, phone).
// Values are kept as strings so leading zeros survive storage round-trips.
func IsElevenDigits(s string) bool {
	if len(s) != 11 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}
