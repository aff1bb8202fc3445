// Package registration provides the concrete registration number generator.
package registration

import (
	"math/rand/v2"

	"drivefleet/internal/domain/entity"
	"drivefleet/internal/domain/service"
)

// randomSource draws uniform candidates from the 8-digit registration range.
type randomSource struct{}

// NewRandomSource is the constructor for randomSource.
func NewRandomSource() service.RegistrationNumberSource {
	return &randomSource{}
}

// Next returns a candidate in [RegistrationNumberMin, RegistrationNumberMax].
func (s *randomSource) Next() int64 {
	span := entity.RegistrationNumberMax - entity.RegistrationNumberMin + 1

	return entity.RegistrationNumberMin + rand.Int64N(span)
}
