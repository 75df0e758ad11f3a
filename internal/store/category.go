package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/catalog-api/internal/domain"
)

// CategoryStore defines the interface for category persistence.
type CategoryStore interface {
	// Create inserts the category and sets its ID.
	// Returns ErrCategoryNameExists if the name is already taken.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by ID.
	// Returns ErrCategoryNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Category, error)

	// GetByName retrieves a category by its exact name.
	// Returns ErrCategoryNotFound if it does not exist.
	GetByName(ctx context.Context, name string) (*domain.Category, error)

	// List returns all categories ordered by ID. Never returns a nil slice.
	List(ctx context.Context) ([]*domain.Category, error)

	// Update replaces the category name.
	// Returns ErrCategoryNotFound or ErrCategoryNameExists.
	Update(ctx context.Context, category *domain.Category) error

	// Delete removes the category.
	// Returns ErrCategoryNotFound, or ErrCategoryInUse if products still reference it.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a CategoryStore bound to the given transaction.
	WithTx(tx *sql.Tx) CategoryStore
}
