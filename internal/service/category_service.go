package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/store"
)

// CategoryService provides category operations.
type CategoryService interface {
	// Create adds a category with a unique name.
	Create(ctx context.Context, name string) (*domain.Category, error)

	// List returns every category.
	List(ctx context.Context) ([]*domain.Category, error)

	// Update renames an existing category.
	Update(ctx context.Context, id int64, name string) (*domain.Category, error)

	// Delete removes a category that no product references.
	Delete(ctx context.Context, id int64) error
}

type categoryService struct {
	db         store.TxBeginner
	categories store.CategoryStore
	logger     *slog.Logger
}

// NewCategoryService creates a CategoryService. db is used to run each
// check-then-write sequence in a single transaction.
func NewCategoryService(
	db store.TxBeginner,
	categories store.CategoryStore,
	logger *slog.Logger,
) (CategoryService, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}
	if categories == nil {
		return nil, errors.New("category store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &categoryService{
		db:         db,
		categories: categories,
		logger:     logger.With(slog.String("component", "category_service")),
	}, nil
}

// Create implements CategoryService.Create.
func (s *categoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	category, err := domain.NewCategory(name)
	if err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.categories.WithTx(tx)

		_, err := txStore.GetByName(ctx, name)
		switch {
		case err == nil:
			return &CategoryNameTakenError{Name: name}
		case !errors.Is(err, store.ErrCategoryNotFound):
			return err
		}

		return txStore.Create(ctx, category)
	})
	if err != nil {
		if errors.Is(err, store.ErrCategoryNameExists) {
			err = &CategoryNameTakenError{Name: name}
		}
		return nil, translate("category", "create", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("category created",
		slog.Int64("category_id", category.ID))
	return category, nil
}

// List implements CategoryService.List.
func (s *categoryService) List(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, translate("category", "list", err)
	}
	return categories, nil
}

// Update implements CategoryService.Update.
func (s *categoryService) Update(ctx context.Context, id int64, name string) (*domain.Category, error) {
	category := &domain.Category{ID: id, Name: name}
	if err := category.Validate(); err != nil {
		return nil, err
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.categories.WithTx(tx)
		if _, err := txStore.GetByID(ctx, id); err != nil {
			return err
		}
		return txStore.Update(ctx, category)
	})
	if err != nil {
		if errors.Is(err, store.ErrCategoryNameExists) {
			err = &CategoryNameTakenError{Name: name}
		}
		return nil, translate("category", "update", err)
	}

	return category, nil
}

// Delete implements CategoryService.Delete.
func (s *categoryService) Delete(ctx context.Context, id int64) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.categories.WithTx(tx)
		if _, err := txStore.GetByID(ctx, id); err != nil {
			return err
		}
		return txStore.Delete(ctx, id)
	})
	if err != nil {
		return translate("category", "delete", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("category deleted", slog.Int64("category_id", id))
	return nil
}
