package item

import (
	"context"

	"github.com/google/uuid"
)

// Update carries a partial update; nil fields keep their current value.
type Update struct {
	Name        *string
	Description *string
}

// Repository defines item data storage.
type Repository interface {
	Create(ctx context.Context, i *Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*Item, error)
	GetByName(ctx context.Context, name string) (*Item, error)
	List(ctx context.Context, limit, offset int) ([]*Item, error)
	Update(ctx context.Context, id uuid.UUID, upd Update) (*Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
