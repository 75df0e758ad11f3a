package store

import (
	"context"

	"github.com/phrazzld/catalog-api/internal/domain"
)

// ProductStore defines the interface for product persistence.
// Every product it returns has Category populated from the categories table.
type ProductStore interface {
	// Create inserts the product, then sets its ID and embedded category.
	// Returns ErrProductCategoryInvalid if CategoryID does not reference a category.
	Create(ctx context.Context, product *domain.Product) error

	// GetByID retrieves a product by ID.
	// Returns ErrProductNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// List returns all products ordered by ID.
	List(ctx context.Context) ([]*domain.Product, error)

	// ListByCategory returns the products of one category ordered by name.
	ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Product, error)

	// Update applies the present patch fields and returns the stored result.
	// Returns ErrProductNotFound or ErrProductCategoryInvalid.
	Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error)

	// Delete removes the product.
	// Returns ErrProductNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}
