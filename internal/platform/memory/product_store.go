package memory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/microservices-demo/catalog-api/internal/domain"
	"github.com/microservices-demo/catalog-api/internal/store"
)

// ProductStore implements store.ProductStore over a fixed product dataset.
type ProductStore struct {
	products []domain.Product
	byID     map[int]int
	logger   *slog.Logger
}

// Ensure ProductStore implements store.ProductStore interface
var _ store.ProductStore = (*ProductStore)(nil)

// NewProductStore validates and indexes the given products.
// Returns an error wrapping store.ErrInvalidEntity or store.ErrDuplicate
// if any record is invalid or shares an ID with an earlier one.
func NewProductStore(products []domain.Product, logger *slog.Logger) (*ProductStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &ProductStore{
		products: make([]domain.Product, 0, len(products)),
		byID:     make(map[int]int, len(products)),
		logger:   logger.With(slog.String("store", "product")),
	}

	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, store.NewStoreError("product", "load",
				fmt.Sprintf("invalid record %d", p.ID),
				fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
		}
		if _, exists := s.byID[p.ID]; exists {
			return nil, store.NewStoreError("product", "load",
				fmt.Sprintf("duplicate id %d", p.ID), store.ErrDuplicate)
		}
		s.byID[p.ID] = len(s.products)
		s.products = append(s.products, p)
	}

	s.logger.Debug("product dataset loaded", slog.Int("count", len(s.products)))
	return s, nil
}

// List implements store.ProductStore.List
func (s *ProductStore) List(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// GetByID implements store.ProductStore.GetByID
func (s *ProductStore) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	idx, ok := s.byID[id]
	if !ok {
		s.logger.DebugContext(ctx, "product lookup missed", slog.Int("product_id", id))
		return nil, store.ErrProductNotFound
	}
	p := s.products[idx]
	return &p, nil
}
