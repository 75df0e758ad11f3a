//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/catalog-api/internal/platform/postgres"
)

// urlEnvVars are checked in order for the test database URL.
var urlEnvVars = []string{"CATALOG_TEST_DATABASE_URL", "CATALOG_DATABASE_URL", "DATABASE_URL"}

// GetTestDatabaseURL returns the first configured database URL, or "".
func GetTestDatabaseURL() string {
	for _, name := range urlEnvVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// SetupTestDB opens the test database, applies the schema and closes the
// pool when the test ends. The test is skipped if no URL is configured.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("no test database URL set; skipping integration test")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("failed to ping test database: %v", err)
	}

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := postgres.ApplySchema(ctx, db, quiet); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	return db
}

// WithTx runs fn inside a transaction that is always rolled back, so each
// test leaves the database as it found it.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("warning: failed to roll back transaction: %v", err)
		}
	}()

	fn(t, tx)
}
