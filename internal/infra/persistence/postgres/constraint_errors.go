package postgres

import (
	"strings"

	domainerrors "drivefleet/internal/domain/errors"
	"drivefleet/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const pgUniqueViolationCode = "23505"

// isUniqueConstraintViolation reports whether err is a duplicate key error,
// either translated by GORM or raw from the driver.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolationCode
	}

	return false
}

// uniqueViolationError maps a duplicate key error to the domain error of the
// violated constraint. Pre-checks in the use cases catch most duplicates
// before the insert; this covers the race where two transactions pass the
// check and one loses at commit.
func uniqueViolationError(err error, fallback error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fallback
	}

	constraint := strings.ToLower(pgErr.ConstraintName)
	switch {
	case strings.Contains(constraint, "email"):
		return domainerrors.ErrEmailAlreadyExists
	case strings.Contains(constraint, "cpf"):
		return domainerrors.ErrCPFAlreadyExists
	case strings.Contains(constraint, "phone"):
		return domainerrors.ErrPhoneAlreadyExists
	case strings.Contains(constraint, "registration_number"):
		// Retryable: the seller registrar draws a fresh number and re-runs.
		return repository.ErrRegistrationNumberTaken
	case strings.Contains(constraint, "plate"):
		return domainerrors.ErrPlateAlreadyExists
	case strings.Contains(constraint, "sales_order"):
		return domainerrors.ErrPaymentAlreadyExists
	default:
		return fallback
	}
}

// isForeignKeyConstraintViolation reports whether err is a foreign key violation.
func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
