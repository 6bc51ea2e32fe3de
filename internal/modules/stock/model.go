package stock

import (
	"time"

	"github.com/google/uuid"
)

// Stock records how many units of an item a store holds. One record per
// (store, item) pair; quantity and sold never go below zero.
type Stock struct {
	ID        uuid.UUID `json:"id"`
	StoreID   uuid.UUID `json:"store_id"`
	ItemID    uuid.UUID `json:"item_id"`
	Quantity  int       `json:"quantity"`
	Sold      int       `json:"sold"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Report is a stock record joined with the store and item names.
type Report struct {
	Stock
	Item  string `json:"item"`
	Store string `json:"store"`
}
