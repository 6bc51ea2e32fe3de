package stock

import (
	"context"

	"github.com/google/uuid"
)

// Filter narrows report listings; nil fields match everything.
type Filter struct {
	StoreID *uuid.UUID
	ItemID  *uuid.UUID
	Limit   int
	Offset  int
}

// Update carries a partial update; nil fields keep their current value.
type Update struct {
	Quantity *int
	Sold     *int
	Price    *float64
}

// Adjustment describes an upsert-adjust: deltas are signed and applied to
// the existing record if one exists, with results clamped at zero. A nil
// Price keeps the current price.
type Adjustment struct {
	StoreID  uuid.UUID
	ItemID   uuid.UUID
	Quantity *int
	Sold     *int
	Price    *float64
}

// Repository defines stock data storage.
type Repository interface {
	Create(ctx context.Context, s *Stock) error
	GetByID(ctx context.Context, id uuid.UUID) (*Stock, error)
	ListReport(ctx context.Context, f Filter) ([]*Report, error)
	Update(ctx context.Context, id uuid.UUID, upd Update) (*Stock, error)
	Adjust(ctx context.Context, a Adjustment) (*Stock, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
