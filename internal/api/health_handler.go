package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/microservices-demo/catalog-api/internal/api/shared"
)

// HealthHandler reports liveness. It holds no store so it keeps answering
// even when the datasets are empty or failed to load.
type HealthHandler struct {
	env string
}

// NewHealthHandler creates a HealthHandler that reports env in its payload.
func NewHealthHandler(env string) *HealthHandler {
	return &HealthHandler{env: env}
}

// Routes registers the health route on r. It is meant to be mounted at /health.
func (h *HealthHandler) Routes(r chi.Router) {
	r.Get("/", h.Health)
}

// Health handles GET /health requests
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:      "ok",
		Environment: h.env,
	})
}
