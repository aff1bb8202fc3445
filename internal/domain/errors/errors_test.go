package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByErrorCode(t *testing.T) {
	enriched := ErrValidationFailed.WithDetails("cpf must be exactly 11 digits")

	assert.True(t, errors.Is(enriched, ErrValidationFailed))
	assert.False(t, errors.Is(enriched, ErrEmailAlreadyExists))
	assert.Equal(t, "cpf must be exactly 11 digits", enriched.Details())
	// The sentinel stays untouched.
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestBaseError_SurvivesWrapping(t *testing.T) {
	wrapped := errors.Wrap(ErrOrderNotOpen, "payment attachment failed")

	assert.True(t, errors.Is(wrapped, ErrOrderNotOpen))

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, ErrOrderNotOpen.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, ErrOrderNotOpen.HTTPCode(), appErr.HTTPCode())
}

func TestPredefinedErrors_HTTPCodes(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, ErrUserNotFound.HTTPCode())
	assert.Equal(t, http.StatusConflict, ErrEmailAlreadyExists.HTTPCode())
	assert.Equal(t, http.StatusConflict, ErrVehicleAlreadyLinked.HTTPCode())
	assert.Equal(t, http.StatusUnauthorized, ErrInvalidCredentials.HTTPCode())
	assert.Equal(t, http.StatusBadRequest, ErrValidationFailed.HTTPCode())
	assert.Equal(t, http.StatusConflict, ErrOrderNotOpen.HTTPCode())
}
