package memory

import "github.com/microservices-demo/catalog-api/internal/domain"

// DefaultUsers returns the built-in user dataset served by the API.
// A new slice is returned on every call.
func DefaultUsers() []domain.User {
	return []domain.User{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
		{ID: 3, Name: "Charlie"},
	}
}

// DefaultProducts returns the built-in product dataset served by the API.
// A new slice is returned on every call.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Laptop", Price: 999.99},
		{ID: 2, Name: "Smartphone", Price: 499.99},
		{ID: 3, Name: "Headphones", Price: 79.99},
	}
}
