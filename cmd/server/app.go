package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/microservices-demo/catalog-api/internal/config"
	"github.com/microservices-demo/catalog-api/internal/domain"
	"github.com/microservices-demo/catalog-api/internal/platform/memory"
	"github.com/microservices-demo/catalog-api/internal/store"
)

// application holds all the shared application dependencies.
// Every field is set once by newApplication and only read afterwards.
type application struct {
	config *config.Config
	logger *slog.Logger

	userStore    store.UserStore
	productStore store.ProductStore
}

// newApplication creates an application serving the built-in datasets.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	return newApplicationWithData(cfg, logger, memory.DefaultUsers(), memory.DefaultProducts())
}

// newApplicationWithData creates an application serving the given datasets.
// The slices are copied; later changes by the caller are not observed.
func newApplicationWithData(
	cfg *config.Config,
	logger *slog.Logger,
	users []domain.User,
	products []domain.Product,
) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.userStore, err = memory.NewUserStore(users, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load user dataset: %w", err)
	}

	app.productStore, err = memory.NewProductStore(products, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load product dataset: %w", err)
	}

	logger.Info("Application initialized successfully",
		"users", len(users),
		"products", len(products))
	return app, nil
}

// Run serves HTTP until ctx is cancelled, then shuts the server down gracefully.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
