package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// Entity-specific variants wrap it, so errors.Is(err, ErrNotFound) matches all of them.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when a write would violate a uniqueness constraint.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when a write violates a foreign key or check
	// constraint. Check the wrapped error for the constraint involved.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrDeleteFailed is returned when a delete is rejected because the entity
	// is still referenced by other entities.
	ErrDeleteFailed = errors.New("delete failed")

	// ErrCategoryNotFound indicates that the requested category does not exist.
	ErrCategoryNotFound = fmt.Errorf("%w: category", ErrNotFound)

	// ErrProductNotFound indicates that the requested product does not exist.
	ErrProductNotFound = fmt.Errorf("%w: product", ErrNotFound)

	// ErrCategoryNameExists indicates that another category already uses the name.
	ErrCategoryNameExists = fmt.Errorf("%w: category name", ErrDuplicate)

	// ErrCategoryInUse indicates that products still reference the category.
	ErrCategoryInUse = fmt.Errorf("%w: category is referenced by products", ErrDeleteFailed)

	// ErrProductCategoryInvalid indicates that a product write referenced a
	// category that does not exist.
	ErrProductCategoryInvalid = fmt.Errorf("%w: product category", ErrInvalidEntity)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "category", "product")
	Operation string // The operation that failed (e.g., "create", "update")
	Message   string
	Err       error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %s: %v", e.Entity, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %s", e.Entity, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
