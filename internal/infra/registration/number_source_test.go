package registration

import (
	"testing"

	"drivefleet/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestRandomSource_NextStaysInRange(t *testing.T) {
	source := NewRandomSource()

	for i := 0; i < 10_000; i++ {
		number := source.Next()
		assert.GreaterOrEqual(t, number, entity.RegistrationNumberMin)
		assert.LessOrEqual(t, number, entity.RegistrationNumberMax)
	}
}

func TestRandomSource_NextVaries(t *testing.T) {
	source := NewRandomSource()

	seen := make(map[int64]struct{})
	for i := 0; i < 100; i++ {
		seen[source.Next()] = struct{}{}
	}

	// 100 draws from an 8-digit keyspace collapsing to one value would mean
	// the source is not random at all.
	assert.Greater(t, len(seen), 1)
}
