package postgres

import (
	"testing"

	domainerrors "drivefleet/internal/domain/errors"
	"drivefleet/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: pgUniqueViolationCode, ConstraintName: constraint}
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(uniqueViolation("users_email_key")))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(uniqueViolation("users_email_key"), "insert failed")))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueConstraintViolation(errors.New("some other failure")))
	assert.False(t, isUniqueConstraintViolation(nil))
}

func TestUniqueViolationError_MapsConstraintNames(t *testing.T) {
	fallback := errors.New("fallback")

	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{name: "email", constraint: "users_email_key", want: domainerrors.ErrEmailAlreadyExists},
		{name: "cpf", constraint: "customers_cpf_key", want: domainerrors.ErrCPFAlreadyExists},
		{name: "phone", constraint: "customers_phone_key", want: domainerrors.ErrPhoneAlreadyExists},
		{name: "registration number", constraint: "sellers_registration_number_key", want: repository.ErrRegistrationNumberTaken},
		{name: "plate", constraint: "vehicles_plate_key", want: domainerrors.ErrPlateAlreadyExists},
		{name: "payment per order", constraint: "payments_sales_order_id_key", want: domainerrors.ErrPaymentAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := uniqueViolationError(uniqueViolation(tt.constraint), fallback)
			assert.True(t, errors.Is(got, tt.want))
		})
	}
}

func TestUniqueViolationError_FallsBack(t *testing.T) {
	fallback := errors.New("fallback")

	assert.Equal(t, fallback, uniqueViolationError(uniqueViolation("some_unknown_key"), fallback))
	assert.Equal(t, fallback, uniqueViolationError(gorm.ErrDuplicatedKey, fallback))
}
