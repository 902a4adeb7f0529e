package api

import (
	"context"

	"github.com/microservices-demo/catalog-api/internal/domain"
)

// MockUserStore is a mock implementation of store.UserStore for testing
type MockUserStore struct {
	ListFn    func(ctx context.Context) ([]domain.User, error)
	GetByIDFn func(ctx context.Context, id int) (*domain.User, error)
}

// List implements store.UserStore
func (m *MockUserStore) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []domain.User{}, nil
}

// GetByID implements store.UserStore
func (m *MockUserStore) GetByID(ctx context.Context, id int) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

// MockProductStore is a mock implementation of store.ProductStore for testing
type MockProductStore struct {
	ListFn    func(ctx context.Context) ([]domain.Product, error)
	GetByIDFn func(ctx context.Context, id int) (*domain.Product, error)
}

// List implements store.ProductStore
func (m *MockProductStore) List(ctx context.Context) ([]domain.Product, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []domain.Product{}, nil
}

// GetByID implements store.ProductStore
func (m *MockProductStore) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}
