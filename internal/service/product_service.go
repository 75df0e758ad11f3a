package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/store"
)

// ProductService provides product operations. Every product it returns
// carries its embedded category.
type ProductService interface {
	// Create adds a product to an existing category.
	// Returns ErrCategoryRefNotFound if the category does not exist.
	Create(ctx context.Context, name string, price float64, categoryID int64) (*domain.Product, error)

	// List returns every product.
	List(ctx context.Context) ([]*domain.Product, error)

	// Get returns one product.
	Get(ctx context.Context, id int64) (*domain.Product, error)

	// Update applies a partial update.
	// Returns ErrInvalidCategoryRef if the patch names a category that does not exist.
	Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error)

	// Delete removes a product.
	Delete(ctx context.Context, id int64) error

	// ListByCategory returns the products of a category sorted by name.
	// Returns ErrCategoryRefNotFound if the category does not exist.
	ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Product, error)
}

type productService struct {
	products   store.ProductStore
	categories store.CategoryStore
	logger     *slog.Logger
}

// NewProductService creates a ProductService.
func NewProductService(
	products store.ProductStore,
	categories store.CategoryStore,
	logger *slog.Logger,
) (ProductService, error) {
	if products == nil {
		return nil, errors.New("product store cannot be nil")
	}
	if categories == nil {
		return nil, errors.New("category store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &productService{
		products:   products,
		categories: categories,
		logger:     logger.With(slog.String("component", "product_service")),
	}, nil
}

// categoryExists returns false without error when the category is missing.
func (s *productService) categoryExists(ctx context.Context, id int64) (bool, error) {
	_, err := s.categories.GetByID(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrCategoryNotFound):
		return false, nil
	default:
		return false, err
	}
}

// Create implements ProductService.Create.
func (s *productService) Create(
	ctx context.Context,
	name string,
	price float64,
	categoryID int64,
) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	product, err := domain.NewProduct(name, price, categoryID)
	if err != nil {
		return nil, err
	}

	ok, err := s.categoryExists(ctx, categoryID)
	if err != nil {
		return nil, translate("product", "create", err)
	}
	if !ok {
		log.Debug("product create names unknown category", slog.Int64("category_id", categoryID))
		return nil, ErrCategoryRefNotFound
	}

	if err := s.products.Create(ctx, product); err != nil {
		// The category was removed between the check and the insert.
		if errors.Is(err, store.ErrProductCategoryInvalid) {
			return nil, ErrCategoryRefNotFound
		}
		return nil, translate("product", "create", err)
	}

	return product, nil
}

// List implements ProductService.List.
func (s *productService) List(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, translate("product", "list", err)
	}
	return products, nil
}

// Get implements ProductService.Get.
func (s *productService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, translate("product", "get", err)
	}
	return product, nil
}

// Update implements ProductService.Update.
// Field validation and the category check run before the product lookup,
// so an invalid patch is rejected even when the product does not exist.
func (s *productService) Update(
	ctx context.Context,
	id int64,
	patch domain.ProductPatch,
) (*domain.Product, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	if patch.CategoryID != nil {
		ok, err := s.categoryExists(ctx, *patch.CategoryID)
		if err != nil {
			return nil, translate("product", "update", err)
		}
		if !ok {
			return nil, ErrInvalidCategoryRef
		}
	}

	product, err := s.products.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrProductCategoryInvalid) {
			return nil, ErrInvalidCategoryRef
		}
		return nil, translate("product", "update", err)
	}

	return product, nil
}

// Delete implements ProductService.Delete.
func (s *productService) Delete(ctx context.Context, id int64) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return translate("product", "delete", err)
	}
	return nil
}

// ListByCategory implements ProductService.ListByCategory.
func (s *productService) ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Product, error) {
	ok, err := s.categoryExists(ctx, categoryID)
	if err != nil {
		return nil, translate("product", "list_by_category", err)
	}
	if !ok {
		return nil, ErrCategoryRefNotFound
	}

	products, err := s.products.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, translate("product", "list_by_category", err)
	}
	return products, nil
}
