// Package errors defines the application's domain error taxonomy.
// Every operation of the core returns either a success value or one of these
// named error kinds; the delivery layer maps them to transport responses.
package errors

import (
	"net/http"

	"drivefleet/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// Is lets errors.Is treat two errors carrying the same business code as
// equivalent, so detail-enriched copies still match their sentinel.
func (e *BaseError) Is(target error) bool {
	var appErr AppError
	if !errors.As(target, &appErr) {
		return false
	}

	return e.errorCode == appErr.ErrorCode()
}

// WithDetails adds detailed error information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Not-found errors, one per store.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"identity record not found",
		"",
	)

	ErrCustomerNotFound = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"customer not found",
		"",
	)

	ErrSellerNotFound = NewBaseError(
		http.StatusNotFound,
		"SELLER_NOT_FOUND",
		"seller not found",
		"",
	)

	ErrVehicleNotFound = NewBaseError(
		http.StatusNotFound,
		"VEHICLE_NOT_FOUND",
		"vehicle not found",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"sales order not found",
		"",
	)

	ErrPaymentNotFound = NewBaseError(
		http.StatusNotFound,
		"PAYMENT_NOT_FOUND",
		"payment not found",
		"",
	)

	// Uniqueness violations on mutating writes.
	ErrEmailAlreadyExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_EXISTS",
		"email already in use",
		"",
	)

	ErrCPFAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CPF_ALREADY_EXISTS",
		"cpf already registered to another customer",
		"",
	)

	ErrPhoneAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PHONE_ALREADY_EXISTS",
		"phone already registered to another customer",
		"",
	)

	ErrPlateAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PLATE_ALREADY_EXISTS",
		"plate already registered",
		"",
	)

	// Lifecycle and relational-integrity violations.
	ErrSellerHasLinkedOrders = NewBaseError(
		http.StatusConflict,
		"SELLER_HAS_LINKED_ORDERS",
		"seller has linked sales orders and cannot be excluded",
		"",
	)

	ErrVehicleNotAvailable = NewBaseError(
		http.StatusConflict,
		"VEHICLE_NOT_AVAILABLE",
		"vehicle is not available",
		"",
	)

	ErrVehicleAlreadyLinked = NewBaseError(
		http.StatusConflict,
		"VEHICLE_ALREADY_LINKED",
		"vehicle is already linked to an active sales order",
		"",
	)

	ErrOrderNotOpen = NewBaseError(
		http.StatusConflict,
		"ORDER_NOT_OPEN",
		"sales order is not open",
		"",
	)

	ErrPaymentAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PAYMENT_ALREADY_EXISTS",
		"sales order already has a payment",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"state transition not allowed",
		"",
	)

	ErrUserExcluded = NewBaseError(
		http.StatusConflict,
		"USER_EXCLUDED",
		"identity record has been excluded",
		"",
	)

	ErrRegistrationNumberExhausted = NewBaseError(
		http.StatusInternalServerError,
		"REGISTRATION_NUMBER_EXHAUSTED",
		"could not generate a unique registration number",
		"",
	)

	// Authentication-related errors.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"email or password is incorrect",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"failed to process password",
		"",
	)

	// Validation-related errors.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Transaction-related errors.
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message.
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
