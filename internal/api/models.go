package api

import "github.com/microservices-demo/catalog-api/internal/domain"

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment,omitempty"`
}

func userToResponse(u domain.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name}
}

func productToResponse(p domain.Product) ProductResponse {
	return ProductResponse{ID: p.ID, Name: p.Name, Price: p.Price}
}
