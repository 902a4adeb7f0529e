package domain

import (
	"errors"
	"math"
	"strings"
)

var (
	// ErrNegativePrice is returned when a product carries a price below zero.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrInvalidPrice is returned when a price is NaN or infinite, which JSON
	// cannot encode.
	ErrInvalidPrice = errors.New("price must be a finite number")
)

// Product is a read-only product record served by the catalog.
// Price is descriptive only; ID and Name are the guaranteed fields.
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Validate checks that the product has a positive ID, a name and a finite,
// non-negative price.
func (p *Product) Validate() error {
	if p.ID <= 0 {
		return NewValidationError("id", "must be positive", ErrInvalidID)
	}
	if strings.TrimSpace(p.Name) == "" {
		return NewValidationError("name", "cannot be empty", ErrEmptyName)
	}
	if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
		return NewValidationError("price", "must be a finite number", ErrInvalidPrice)
	}
	if p.Price < 0 {
		return NewValidationError("price", "cannot be negative", ErrNegativePrice)
	}
	return nil
}
