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

// PostgresCategoryStore implements store.CategoryStore on PostgreSQL.
type PostgresCategoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCategoryStore creates a category store over db, which may be
// a pool or a transaction owned by the caller. A nil logger uses slog.Default().
func NewPostgresCategoryStore(db store.DBTX, logger *slog.Logger) *PostgresCategoryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCategoryStore{
		db:     db,
		logger: logger.With(slog.String("component", "category_store")),
	}
}

var _ store.CategoryStore = (*PostgresCategoryStore)(nil)

// Create implements store.CategoryStore.Create.
func (s *PostgresCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		return err
	}

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`,
		category.Name,
	).Scan(&category.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("category name already exists", slog.String("name", category.Name))
			return fmt.Errorf("%w: %w", store.ErrCategoryNameExists, err)
		}
		log.Error("failed to create category", slog.String("error", err.Error()))
		return store.NewStoreError("category", "create", "insert failed", MapError(err))
	}

	log.Info("category created", slog.Int64("category_id", category.ID))
	return nil
}

// GetByID implements store.CategoryStore.GetByID.
func (s *PostgresCategoryStore) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	return s.getOne(ctx, `SELECT id, name FROM categories WHERE id = $1`, id)
}

// GetByName implements store.CategoryStore.GetByName.
func (s *PostgresCategoryStore) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	return s.getOne(ctx, `SELECT id, name FROM categories WHERE name = $1`, name)
}

func (s *PostgresCategoryStore) getOne(ctx context.Context, query string, arg any) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var c domain.Category
	if err := s.db.QueryRowContext(ctx, query, arg).Scan(&c.ID, &c.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCategoryNotFound
		}
		log.Error("failed to get category", slog.String("error", err.Error()), slog.Any("key", arg))
		return nil, store.NewStoreError("category", "get", "query failed", err)
	}
	return &c, nil
}

// List implements store.CategoryStore.List.
func (s *PostgresCategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		log.Error("failed to list categories", slog.String("error", err.Error()))
		return nil, store.NewStoreError("category", "list", "query failed", err)
	}
	defer func() { _ = rows.Close() }()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, store.NewStoreError("category", "list", "scan failed", err)
		}
		categories = append(categories, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("category", "list", "row iteration failed", err)
	}

	log.Debug("listed categories", slog.Int("count", len(categories)))
	return categories, nil
}

// Update implements store.CategoryStore.Update.
func (s *PostgresCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE categories SET name = $1 WHERE id = $2`,
		category.Name, category.ID,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("category rename collides", slog.Int64("category_id", category.ID))
			return fmt.Errorf("%w: %w", store.ErrCategoryNameExists, err)
		}
		log.Error("failed to update category", slog.String("error", err.Error()))
		return store.NewStoreError("category", "update", "update failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrCategoryNotFound); err != nil {
		return err
	}

	log.Info("category updated", slog.Int64("category_id", category.ID))
	return nil
}

// Delete implements store.CategoryStore.Delete.
func (s *PostgresCategoryStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Debug("category still referenced by products", slog.Int64("category_id", id))
			return fmt.Errorf("%w: %w", store.ErrCategoryInUse, err)
		}
		log.Error("failed to delete category", slog.String("error", err.Error()))
		return store.NewStoreError("category", "delete", "delete failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrCategoryNotFound); err != nil {
		return err
	}

	log.Info("category deleted", slog.Int64("category_id", id))
	return nil
}

// WithTx implements store.CategoryStore.WithTx.
func (s *PostgresCategoryStore) WithTx(tx *sql.Tx) store.CategoryStore {
	return &PostgresCategoryStore{db: tx, logger: s.logger}
}
