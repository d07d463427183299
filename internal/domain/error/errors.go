package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation        = 4000
	CodeInvalidAmount     = 4002
	CodeInvalidID         = 4003
	CodeDuplicateUsername = 4004
	CodeDuplicateWallet   = 4005
	CodePaymentRejected   = 4020
	CodeUserNotFound      = 4040
	CodeModelNotFound     = 4041
	CodePromptNotFound    = 4042
	CodeNotFound          = 4049

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrValidation is the root of every malformed create/update payload error
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAmount is returned when a monetary string is not a non-negative decimal
	ErrInvalidAmount = fmt.Errorf("%w: invalid amount format", ErrValidation)

	// ErrNegativeAmount is returned when a monetary string is negative
	ErrNegativeAmount = fmt.Errorf("%w: amount cannot be negative", ErrValidation)

	// ErrInvalidID is returned when an entity id is zero or not a positive integer
	ErrInvalidID = fmt.Errorf("%w: id must be positive", ErrValidation)

	// ErrDuplicateUsername is returned when the username is already registered
	ErrDuplicateUsername = fmt.Errorf("%w: username already exists", ErrValidation)

	// ErrDuplicateWalletAddress is returned when the wallet address is already bound to a user
	ErrDuplicateWalletAddress = fmt.Errorf("%w: wallet address already exists", ErrValidation)

	// ErrPaymentRejected is returned when the wallet boundary reports an unsuccessful payment
	ErrPaymentRejected = errors.New("payment transaction was not successful")

	// ErrTransactionHashInUse is returned when a transaction hash already settled a different purchase
	ErrTransactionHashInUse = fmt.Errorf("%w: transaction already used for another purchase", ErrPaymentRejected)

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)

	// ErrModelNotFound is returned when the requested AI model doesn't exist
	ErrModelNotFound = fmt.Errorf("model %w", ErrNotFound)

	// ErrPromptNotFound is returned when the requested prompt doesn't exist
	ErrPromptNotFound = fmt.Errorf("prompt %w", ErrNotFound)

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrModelNotFound):
		return CodeModelNotFound
	case errors.Is(err, ErrPromptNotFound):
		return CodePromptNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidID):
		return CodeInvalidID
	case errors.Is(err, ErrDuplicateUsername):
		return CodeDuplicateUsername
	case errors.Is(err, ErrDuplicateWalletAddress):
		return CodeDuplicateWallet
	case errors.Is(err, ErrPaymentRejected):
		return CodePaymentRejected
	case errors.Is(err, ErrValidation):
		return CodeValidation
	default:
		return CodeInternalServer
	}
}

// ValidationError describes a single rejected field of a create payload
type ValidationError struct {
	Entity string
	Field  string
	Reason string
	Err    error
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid %s: %s", e.Entity, e.Reason)
	}
	return fmt.Sprintf("invalid %s field %q: %s", e.Entity, e.Field, e.Reason)
}

// Unwrap returns the underlying error, ErrValidation when none was given
func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrValidation
	}
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"entity":     e.Entity,
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": ErrorCode(e),
	}
}

// NewValidationError creates a validation error for the given entity field
func NewValidationError(entity, field, reason string) error {
	return &ValidationError{
		Entity: entity,
		Field:  field,
		Reason: reason,
	}
}

// WrapValidationError attaches entity and field context to a validation-class error
func WrapValidationError(entity, field string, err error) error {
	return &ValidationError{
		Entity: entity,
		Field:  field,
		Reason: err.Error(),
		Err:    err,
	}
}

// NotFoundError carries the id or key that failed to resolve
type NotFoundError struct {
	Key string
	Err error
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Key)
}

// Unwrap returns the entity-specific not found sentinel
func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a not found error for the given sentinel and key
func NewNotFoundError(sentinel error, key any) error {
	return &NotFoundError{
		Key: fmt.Sprint(key),
		Err: sentinel,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if the error is a rejected payload
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}
