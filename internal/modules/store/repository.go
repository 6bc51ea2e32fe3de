package store

import (
	"context"

	"github.com/google/uuid"
)

// Update carries a partial update; nil fields keep their current value.
type Update struct {
	Name        *string
	Description *string
	Address     *string
}

// Repository defines store data storage.
type Repository interface {
	Create(ctx context.Context, s *Store) error
	GetByID(ctx context.Context, id uuid.UUID) (*Store, error)
	GetByName(ctx context.Context, name string) (*Store, error)
	List(ctx context.Context, limit, offset int) ([]*Store, error)
	Update(ctx context.Context, id uuid.UUID, upd Update) (*Store, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
