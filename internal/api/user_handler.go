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

// UserHandler serves the user collection.
type UserHandler struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users store.UserStore, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		users:  users,
		logger: logger.With(slog.String("handler", "users")),
	}
}

// Routes registers the user routes on r. It is meant to be mounted at /users.
func (h *UserHandler) Routes(r chi.Router) {
	r.Get("/", h.ListUsers)
	r.Get("/{id}", h.GetUser)
}

// ListUsers handles GET /users requests
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Error("failed to list users", "error", err)
		HandleAPIError(w, r, err, "")
		return
	}

	response := make([]UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, userToResponse(u))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetUser handles GET /users/{id} requests
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id", store.ErrUserNotFound)
	if err != nil {
		message := ""
		if errors.Is(err, domain.ErrInvalidID) {
			log.Debug("invalid user id", slog.String("value", chi.URLParam(r, "id")))
			message = msgInvalidUserID
		}
		HandleAPIError(w, r, err, message)
		return
	}

	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(*user))
}
