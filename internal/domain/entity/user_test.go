package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRole_Valid(t *testing.T) {
	assert.True(t, RoleCustomer.Valid())
	assert.True(t, RoleSeller.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, UserRole("MANAGER").Valid())
	assert.False(t, UserRole("").Valid())
}

func TestUser_Exclude(t *testing.T) {
	user := &User{Status: UserStatusActive}
	assert.True(t, user.IsActive())

	user.Exclude()
	assert.False(t, user.IsActive())
	assert.Equal(t, UserStatusExcluded, user.Status)

	// Re-excluding stays a no-op.
	user.Exclude()
	assert.Equal(t, UserStatusExcluded, user.Status)
}

func TestIsElevenDigits(t *testing.T) {
	assert.True(t, IsElevenDigits("12345678901"))
	assert.True(t, IsElevenDigits("00000000001")) // leading zeros survive
	assert.False(t, IsElevenDigits("1234567890"))
	assert.False(t, IsElevenDigits("123456789012"))
	assert.False(t, IsElevenDigits("123.456.789"))
	assert.False(t, IsElevenDigits("1234567890a"))
	assert.False(t, IsElevenDigits(""))
}
