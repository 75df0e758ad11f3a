package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/store"
)

// Service sentinel errors. Callers match them with errors.Is; the API layer
// maps each one to a status code and client message.
var (
	// ErrCategoryNotFound indicates the category addressed by the request does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrProductNotFound indicates the product addressed by the request does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrCategoryRefNotFound indicates a product create or category listing
	// named a category that does not exist. Reported as not found.
	ErrCategoryRefNotFound = errors.New("referenced category not found")

	// ErrInvalidCategoryRef indicates a product update named a category that
	// does not exist. It is a validation failure, unlike ErrCategoryRefNotFound.
	ErrInvalidCategoryRef error = domain.NewValidationError("categoryId", domain.MsgCategoryIDNotFound)

	// ErrCategoryNameTaken indicates another category already uses the name.
	// Returned wrapped in *CategoryNameTakenError.
	ErrCategoryNameTaken = errors.New("category name already taken")

	// ErrCategoryInUse indicates products still reference the category.
	ErrCategoryInUse = errors.New("category is referenced by products")
)

// CategoryNameTakenError carries the conflicting name so the client message
// can include it.
type CategoryNameTakenError struct {
	Name string
}

// Error implements the error interface.
func (e *CategoryNameTakenError) Error() string {
	return domain.CategoryExistsMessage(e.Name)
}

// Is reports a match against ErrCategoryNameTaken.
func (e *CategoryNameTakenError) Is(target error) bool {
	return target == ErrCategoryNameTaken
}

// ServiceError wraps unexpected failures with the service and operation
// that produced them.
type ServiceError struct {
	Service   string
	Operation string
	Err       error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s service %s failed: %v", e.Service, e.Operation, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// translate maps store sentinels onto service sentinels. Validation errors
// and errors that already belong to this package pass through; anything else
// is wrapped in a ServiceError.
func translate(svc, operation string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrCategoryRefNotFound),
		errors.Is(err, ErrCategoryNameTaken),
		errors.Is(err, ErrCategoryInUse),
		errors.Is(err, domain.ErrValidation):
		return err
	case errors.Is(err, store.ErrCategoryNotFound):
		return ErrCategoryNotFound
	case errors.Is(err, store.ErrProductNotFound):
		return ErrProductNotFound
	case errors.Is(err, store.ErrCategoryInUse):
		return ErrCategoryInUse
	}

	return &ServiceError{Service: svc, Operation: operation, Err: err}
}
