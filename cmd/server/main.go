// Package main implements the entry point for the catalog API server,
// which serves read-only user and product collections over HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/microservices-demo/catalog-api/internal/config"
	"github.com/microservices-demo/catalog-api/internal/platform/logger"
)

// main loads configuration, sets up logging, assembles the application and
// serves HTTP until SIGINT or SIGTERM. Any startup failure is fatal.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Server stopped with error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l := logger.Setup(cfg.Server)

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"env", cfg.Server.Env,
		"log_level", cfg.Server.LogLevel)

	return newApplication(cfg, l)
}
