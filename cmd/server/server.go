package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// startHTTPServer listens on the configured port and serves router until ctx
// is cancelled.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	addr := fmt.Sprintf(":%d", app.config.Server.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	return app.serveHTTP(ctx, ln, router)
}

// serveHTTP serves router on ln. When ctx is cancelled the server stops
// accepting connections and waits up to the configured shutdown timeout for
// in-flight requests.
func (app *application) serveHTTP(ctx context.Context, ln net.Listener, router http.Handler) error {
	server := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: app.config.HTTP.ReadTimeout(),
		ReadTimeout:       app.config.HTTP.ReadTimeout(),
	}

	serveErr := make(chan error, 1)
	go func() {
		app.logger.Info("Starting server", "addr", ln.Addr().String())
		serveErr <- server.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		app.logger.Info("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.HTTP.ShutdownTimeout())
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server shutdown failed", "error", err)
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	app.logger.Info("Server shutdown completed")
	return nil
}
