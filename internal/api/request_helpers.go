package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/microservices-demo/catalog-api/internal/domain"
)

// getPathID extracts an integer ID from the URL path parameters.
//
// Parameters:
//   - r: The HTTP request
//   - paramName: The name of the path parameter to extract
//   - notFound: The error returned for integers outside the int range
//
// Returns:
//   - (int, nil): The parsed ID
//   - (0, error): A *domain.ValidationError wrapping domain.ErrInvalidID if the
//     parameter is missing or not a base-10 integer
//   - (0, error): An error wrapping notFound if the integer does not fit in an
//     int, since no record can carry such an ID
//
// Any integer is accepted, including zero and negative values; whether the
// ID exists is for the store to decide.
func getPathID(r *http.Request, paramName string, notFound error) (int, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.Atoi(pathParam)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%s %s out of range: %w", paramName, pathParam, notFound)
	}
	if err != nil {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}
