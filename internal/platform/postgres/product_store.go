package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/store"
)

// Every read joins categories so the embedded reference is always populated.
const (
	productColumns = `p.id, p.name, p.price, p.category_id, c.name`

	selectProducts = `SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id`

	insertProduct = `
		WITH p AS (
			INSERT INTO products (name, price, category_id)
			VALUES ($1, $2, $3)
			RETURNING id, name, price, category_id
		)
		SELECT ` + productColumns + `
		FROM p JOIN categories c ON c.id = p.category_id`

	updateProduct = `
		WITH p AS (
			UPDATE products SET
				name = COALESCE($2, name),
				price = COALESCE($3, price),
				category_id = COALESCE($4, category_id)
			WHERE id = $1
			RETURNING id, name, price, category_id
		)
		SELECT ` + productColumns + `
		FROM p JOIN categories c ON c.id = p.category_id`
)

// PostgresProductStore implements store.ProductStore on PostgreSQL.
type PostgresProductStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProductStore creates a product store over db.
// A nil logger uses slog.Default().
func NewPostgresProductStore(db store.DBTX, logger *slog.Logger) *PostgresProductStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresProductStore{
		db:     db,
		logger: logger.With(slog.String("component", "product_store")),
	}
}

var _ store.ProductStore = (*PostgresProductStore)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &p.CategoryID, &p.Category.Name); err != nil {
		return nil, err
	}
	p.Category.ID = p.CategoryID
	return &p, nil
}

// Create implements store.ProductStore.Create.
func (s *PostgresProductStore) Create(ctx context.Context, product *domain.Product) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := product.Validate(); err != nil {
		return err
	}

	created, err := scanProduct(s.db.QueryRowContext(ctx, insertProduct,
		product.Name, product.Price, product.CategoryID))
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Debug("product references missing category",
				slog.Int64("category_id", product.CategoryID))
			return fmt.Errorf("%w: %w", store.ErrProductCategoryInvalid, err)
		}
		log.Error("failed to create product", slog.String("error", err.Error()))
		return store.NewStoreError("product", "create", "insert failed", MapError(err))
	}

	*product = *created
	log.Info("product created",
		slog.Int64("product_id", product.ID),
		slog.Int64("category_id", product.CategoryID))
	return nil
}

// GetByID implements store.ProductStore.GetByID.
func (s *PostgresProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	p, err := scanProduct(s.db.QueryRowContext(ctx, selectProducts+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProductNotFound
		}
		log.Error("failed to get product",
			slog.String("error", err.Error()),
			slog.Int64("product_id", id))
		return nil, store.NewStoreError("product", "get", "query failed", err)
	}
	return p, nil
}

// List implements store.ProductStore.List.
func (s *PostgresProductStore) List(ctx context.Context) ([]*domain.Product, error) {
	return s.list(ctx, selectProducts+` ORDER BY p.id`)
}

// ListByCategory implements store.ProductStore.ListByCategory.
func (s *PostgresProductStore) ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Product, error) {
	return s.list(ctx, selectProducts+` WHERE p.category_id = $1 ORDER BY p.name ASC, p.id`, categoryID)
}

func (s *PostgresProductStore) list(ctx context.Context, query string, args ...any) ([]*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list products", slog.String("error", err.Error()))
		return nil, store.NewStoreError("product", "list", "query failed", err)
	}
	defer func() { _ = rows.Close() }()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, store.NewStoreError("product", "list", "scan failed", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("product", "list", "row iteration failed", err)
	}

	log.Debug("listed products", slog.Int("count", len(products)))
	return products, nil
}

// Update implements store.ProductStore.Update.
// Absent patch fields are passed as NULL and keep their stored value.
func (s *PostgresProductStore) Update(
	ctx context.Context,
	id int64,
	patch domain.ProductPatch,
) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return s.GetByID(ctx, id)
	}

	p, err := scanProduct(s.db.QueryRowContext(ctx, updateProduct,
		id, nullable(patch.Name), nullable(patch.Price), nullable(patch.CategoryID)))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, store.ErrProductNotFound
		case IsForeignKeyViolation(err):
			log.Debug("product update references missing category", slog.Int64("product_id", id))
			return nil, fmt.Errorf("%w: %w", store.ErrProductCategoryInvalid, err)
		}
		log.Error("failed to update product",
			slog.String("error", err.Error()),
			slog.Int64("product_id", id))
		return nil, store.NewStoreError("product", "update", "update failed", MapError(err))
	}

	log.Info("product updated", slog.Int64("product_id", id))
	return p, nil
}

// Delete implements store.ProductStore.Delete.
func (s *PostgresProductStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete product",
			slog.String("error", err.Error()),
			slog.Int64("product_id", id))
		return store.NewStoreError("product", "delete", "delete failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrProductNotFound); err != nil {
		return err
	}

	log.Info("product deleted", slog.Int64("product_id", id))
	return nil
}

// nullable turns an absent patch field into a SQL NULL.
func nullable[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}
