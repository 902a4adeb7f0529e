package store

import (
	"context"

	"github.com/microservices-demo/catalog-api/internal/domain"
)

// ProductStore defines read access to the product dataset.
type ProductStore interface {
	// List returns every product in dataset order.
	// The returned slice is never nil and may be modified by the caller.
	List(ctx context.Context) ([]domain.Product, error)

	// GetByID retrieves a product by its ID.
	// Returns ErrProductNotFound if the product does not exist.
	GetByID(ctx context.Context, id int) (*domain.Product, error)
}
