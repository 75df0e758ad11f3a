package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
)

// MigrationsDir is the directory inside the embedded filesystem holding the schema files.
const MigrationsDir = "migrations"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// slogGooseLogger routes goose output through slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf implements goose.Logger.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf implements goose.Logger. It logs at error level and does not exit;
// the failure is returned from ApplySchema instead.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

// ApplySchema brings the database up to the embedded schema version.
// It is safe to call on every start-up; applied versions are skipped.
func ApplySchema(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With(
		slog.String("component", "schema"),
		slog.String("correlation_id", uuid.NewString()),
	)

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(&slogGooseLogger{logger: log})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	log.Info("applying database schema")
	if err := goose.UpContext(ctx, db, MigrationsDir); err != nil {
		log.Error("schema migration failed", slog.String("error", err.Error()))
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	log.Info("database schema is current", slog.Int64("version", version))
	return nil
}
