package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/microservices-demo/catalog-api/internal/api/shared"
	"github.com/microservices-demo/catalog-api/internal/domain"
	"github.com/microservices-demo/catalog-api/internal/platform/logger"
	"github.com/microservices-demo/catalog-api/internal/store"
)

// ProductHandler serves the product collection.
type ProductHandler struct {
	products store.ProductStore
	logger   *slog.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(products store.ProductStore, logger *slog.Logger) *ProductHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductHandler{
		products: products,
		logger:   logger.With(slog.String("handler", "products")),
	}
}

// Routes registers the product routes on r. It is meant to be mounted at /products.
func (h *ProductHandler) Routes(r chi.Router) {
	r.Get("/", h.ListProducts)
	r.Get("/{id}", h.GetProduct)
}

// ListProducts handles GET /products requests
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Error("failed to list products", "error", err)
		HandleAPIError(w, r, err, "")
		return
	}

	response := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, productToResponse(p))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetProduct handles GET /products/{id} requests
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id", store.ErrProductNotFound)
	if err != nil {
		message := ""
		if errors.Is(err, domain.ErrInvalidID) {
			log.Debug("invalid product id", slog.String("value", chi.URLParam(r, "id")))
			message = msgInvalidProductID
		}
		HandleAPIError(w, r, err, message)
		return
	}

	product, err := h.products.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, productToResponse(*product))
}
