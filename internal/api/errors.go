package api

import (
	"errors"
	"net/http"

	"github.com/microservices-demo/catalog-api/internal/api/shared"
	"github.com/microservices-demo/catalog-api/internal/domain"
	"github.com/microservices-demo/catalog-api/internal/store"
)

// Fixed client-facing messages.
const (
	msgUserNotFound     = "User not found"
	msgProductNotFound  = "Product not found"
	msgResourceNotFound = "Resource not found"
	msgInvalidUserID    = "Invalid user id"
	msgInvalidProductID = "Invalid product id"
	msgMethodNotAllowed = "Method not allowed"
	msgUnexpected       = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return msgUnexpected

	case errors.Is(err, store.ErrUserNotFound):
		return msgUserNotFound

	case errors.Is(err, store.ErrProductNotFound):
		return msgProductNotFound

	case errors.Is(err, store.ErrNotFound):
		return msgResourceNotFound

	default:
		return msgUnexpected
	}
}

// HandleAPIError writes the error response for err. The status code comes
// from MapErrorToStatusCode; the body carries message when it is not empty,
// otherwise the safe message for err. Validation failures name the resource,
// so callers pass the message for them.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// NotFound answers requests that match no registered route.
func NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, msgResourceNotFound)
}

// MethodNotAllowed answers requests whose path exists but whose method does not.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}
