// Package main implements the entry point for the catalog API server, which
// serves CRUD endpoints for categories and products backed by PostgreSQL.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/phrazzld/catalog-api/internal/config"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/platform/postgres"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatalf("catalog-api: %v", err)
	}
}

// run loads configuration, connects to the database and serves until ctx
// is canceled.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Bool("auto_migrate", cfg.Database.AutoMigrate))

	db, err := setupAppDatabase(ctx, cfg.Database, l)
	if err != nil {
		return err
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.ApplySchema(ctx, db, l); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	app, err := newApplication(cfg, l, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
