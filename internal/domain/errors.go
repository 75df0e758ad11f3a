package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// It is wrapped by ValidationError, which carries the client-facing message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or not positive.
	ErrInvalidID = errors.New("invalid ID")
)

// Client-facing validation messages.
const (
	MsgNameRequired        = "Name is required"
	MsgNameEmpty           = "Name cannot be empty"
	MsgPriceRequired       = "Price is required"
	MsgPriceInvalid        = "Price must be a non-negative number"
	MsgCategoryIDRequired  = "Category id is required"
	MsgCategoryIDNotInt    = "Category id must be an integer"
	MsgCategoryIDNotFound  = "Category id not found"
	MsgCategoryNotFound    = "Category not found"
	MsgProductNotFound     = "Product not found"
	MsgCategoryStillInUse  = "Category is still referenced by products"
	MsgCategoryDeleted     = "Category deleted successfully"
	MsgInvalidRequestBody  = "Invalid request format"
	MsgUnexpectedFailure   = "An unexpected error occurred"
	categoryExistsTemplate = "%s category already exists"
)

// ValidationError reports a single field that failed validation.
// Error returns Message unchanged so it can be sent to clients as-is.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap lets callers match any validation failure with errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
