package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/microservices-demo/catalog-api/internal/api"
	apiMiddleware "github.com/microservices-demo/catalog-api/internal/api/middleware"
	"github.com/microservices-demo/catalog-api/internal/api/shared"
)

// setupRouter creates the application router, applies middleware and mounts
// each handler group under its own prefix.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.HTTP.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", shared.TraceIDHeader},
		ExposedHeaders: []string{shared.TraceIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	userHandler := api.NewUserHandler(app.userStore, app.logger)
	productHandler := api.NewProductHandler(app.productStore, app.logger)
	healthHandler := api.NewHealthHandler(app.config.Server.Env)

	r.Route("/users", userHandler.Routes)
	r.Route("/products", productHandler.Routes)
	r.Route("/health", healthHandler.Routes)

	return r
}
