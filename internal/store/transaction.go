package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/catalog-api/internal/platform/logger"
)

// TxFn is a function that executes within a database transaction.
// The transaction is committed if it returns nil and rolled back otherwise.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// RunInTransaction executes fn inside a transaction started on db.
// It rolls back when fn returns an error or panics, and re-raises the panic.
func RunInTransaction(ctx context.Context, db TxBeginner, fn TxFn) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", slog.String("error", err.Error()))
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("failed to roll back transaction after panic",
				slog.String("error", rbErr.Error()),
				slog.Any("panic", p))
		} else {
			log.Error("rolled back transaction after panic", slog.Any("panic", p))
		}
		// ALLOW-PANIC: re-raised after rollback
		panic(p)
	}()

	if fnErr := fn(ctx, tx); fnErr != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("failed to roll back transaction",
				slog.String("rollback_error", rbErr.Error()),
				slog.String("original_error", fnErr.Error()))
			return fmt.Errorf("error rolling back transaction: %v (original error: %w)", rbErr, fnErr)
		}
		log.Debug("rolled back transaction", slog.String("error", fnErr.Error()))
		return fnErr
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction", slog.String("error", err.Error()))
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Debug("transaction committed")
	return nil
}
