package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"
)

// startHTTPServer serves router on the configured port until ctx is
// canceled or the listener fails, then shuts down gracefully within the
// configured timeout.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	listener, err := net.Listen("tcp", net.JoinHostPort("", strconv.Itoa(app.config.Server.Port)))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	return app.serve(ctx, listener, router)
}

// serve runs the HTTP server on listener. It is split from startHTTPServer
// so tests can supply their own listener.
func (app *application) serve(ctx context.Context, listener net.Listener, router http.Handler) error {
	server := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		app.logger.Info("Starting server", "addr", listener.Addr().String())
		serveErr <- server.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		app.logger.Error("Server failed", "error", err)
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		app.logger.Info("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.Server.ShutdownTimeout())
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server shutdown failed", "error", err)
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	app.logger.Info("Server shutdown completed")
	return nil
}
