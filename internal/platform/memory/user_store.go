package memory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/microservices-demo/catalog-api/internal/domain"
	"github.com/microservices-demo/catalog-api/internal/store"
)

// UserStore implements store.UserStore over a fixed user dataset.
type UserStore struct {
	users  []domain.User
	byID   map[int]int
	logger *slog.Logger
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore validates and indexes the given users.
// Returns an error wrapping store.ErrInvalidEntity or store.ErrDuplicate
// if any record is invalid or shares an ID with an earlier one.
func NewUserStore(users []domain.User, logger *slog.Logger) (*UserStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &UserStore{
		users:  make([]domain.User, 0, len(users)),
		byID:   make(map[int]int, len(users)),
		logger: logger.With(slog.String("store", "user")),
	}

	for _, u := range users {
		if err := u.Validate(); err != nil {
			return nil, store.NewStoreError("user", "load",
				fmt.Sprintf("invalid record %d", u.ID),
				fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
		}
		if _, exists := s.byID[u.ID]; exists {
			return nil, store.NewStoreError("user", "load",
				fmt.Sprintf("duplicate id %d", u.ID), store.ErrDuplicate)
		}
		s.byID[u.ID] = len(s.users)
		s.users = append(s.users, u)
	}

	s.logger.Debug("user dataset loaded", slog.Int("count", len(s.users)))
	return s, nil
}

// List implements store.UserStore.List
func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

// GetByID implements store.UserStore.GetByID
func (s *UserStore) GetByID(ctx context.Context, id int) (*domain.User, error) {
	idx, ok := s.byID[id]
	if !ok {
		s.logger.DebugContext(ctx, "user lookup missed", slog.Int("user_id", id))
		return nil, store.ErrUserNotFound
	}
	u := s.users[idx]
	return &u, nil
}
