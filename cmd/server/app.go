package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/catalog-api/internal/config"
	"github.com/phrazzld/catalog-api/internal/platform/postgres"
	"github.com/phrazzld/catalog-api/internal/service"
	"github.com/phrazzld/catalog-api/internal/store"
)

// application holds the shared dependencies and owns their cleanup.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	categoryStore store.CategoryStore
	productStore  store.ProductStore

	categoryService service.CategoryService
	productService  service.ProductService
}

// newApplication wires the stores and services on top of an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if db == nil {
		return nil, fmt.Errorf("database cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.categoryStore = postgres.NewPostgresCategoryStore(db, logger)
	app.productStore = postgres.NewPostgresProductStore(db, logger)

	var err error
	app.categoryService, err = service.NewCategoryService(db, app.categoryStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %w", err)
	}

	app.productService, err = service.NewProductService(app.productStore, app.categoryStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is canceled, then shuts down and releases
// resources.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	err := app.startHTTPServer(ctx, router)
	app.cleanup()
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup closes the database pool.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", slog.String("error", err.Error()))
		}
	}
	app.logger.Info("Application shutdown completed")
}
