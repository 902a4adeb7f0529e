package store

import (
	"context"

	"github.com/microservices-demo/catalog-api/internal/domain"
)

// UserStore defines read access to the user dataset.
type UserStore interface {
	// List returns every user in dataset order.
	// The returned slice is never nil and may be modified by the caller.
	List(ctx context.Context) ([]domain.User, error)

	// GetByID retrieves a user by its ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int) (*domain.User, error)
}
