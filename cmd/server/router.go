package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/catalog-api/internal/api"
	apiMiddleware "github.com/phrazzld/catalog-api/internal/api/middleware"
)

const healthPingTimeout = 2 * time.Second

// pinger is the part of *sql.DB the health check needs.
type pinger interface {
	PingContext(ctx context.Context) error
}

// setupRouter creates the router with middleware, the resource routes and
// the health check.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	api.NewCategoryHandler(app.categoryService, app.logger).RegisterRoutes(r)
	api.NewProductHandler(app.productService, app.logger).RegisterRoutes(r)

	r.Get("/health", healthHandler(app.db, app.logger))

	return r
}

// healthHandler answers 200 OK when the database responds to a ping and
// 503 otherwise.
func healthHandler(db pinger, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()

		status, body := http.StatusOK, "OK"
		if err := db.PingContext(ctx); err != nil {
			logger.Warn("Health check failed", slog.String("error", err.Error()))
			status, body = http.StatusServiceUnavailable, "database unavailable"
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(status)
		if _, err := w.Write([]byte(body)); err != nil {
			logger.Error("Failed to write health check response", slog.String("error", err.Error()))
		}
	}
}
