package stock

import (
	"context"

	"github.com/google/uuid"

	"github.com/alexken/stockroom/internal/apperror"
)

// Service defines stock business logic.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Stock, error)
	Get(ctx context.Context, id string) (*Stock, error)
	List(ctx context.Context, req ListRequest) ([]*Report, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Stock, error)
	Adjust(ctx context.Context, req AdjustRequest) (*Stock, error)
	Delete(ctx context.Context, id string) error
}

// CreateRequest holds data for creating a stock record.
type CreateRequest struct {
	StoreID  string  `json:"store_id"`
	ItemID   string  `json:"item_id"`
	Quantity int     `json:"quantity"`
	Sold     int     `json:"sold"`
	Price    float64 `json:"price"`
}

// ListRequest narrows the stock report; empty IDs match everything.
type ListRequest struct {
	StoreID string
	ItemID  string
	Limit   int
	Offset  int
}

// UpdateRequest holds a partial stock update; absent fields are untouched.
type UpdateRequest struct {
	Quantity *int     `json:"quantity"`
	Sold     *int     `json:"sold"`
	Price    *float64 `json:"price"`
}

// AdjustRequest increments (or decrements) the quantities of a stock
// record, creating it when absent. Price, when present, replaces the
// current price.
type AdjustRequest struct {
	StoreID  string   `json:"store_id"`
	ItemID   string   `json:"item_id"`
	Quantity *int     `json:"quantity"`
	Sold     *int     `json:"sold"`
	Price    *float64 `json:"price"`
}

type service struct {
	repo Repository
}

// NewService creates a new stock service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func parseRef(field, id string) (uuid.UUID, error) {
	if id == "" {
		return uuid.Nil, apperror.Validation("%s is required", field)
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperror.Validation("invalid %s %q", field, id)
	}
	return uid, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Stock, error) {
	storeID, err := parseRef("store_id", req.StoreID)
	if err != nil {
		return nil, err
	}
	itemID, err := parseRef("item_id", req.ItemID)
	if err != nil {
		return nil, err
	}
	if req.Quantity < 0 {
		return nil, apperror.Validation("quantity cannot be negative")
	}
	if req.Sold < 0 {
		return nil, apperror.Validation("sold cannot be negative")
	}
	if req.Price < 0 {
		return nil, apperror.Validation("price cannot be negative")
	}
	rec := &Stock{
		ID:       uuid.New(),
		StoreID:  storeID,
		ItemID:   itemID,
		Quantity: req.Quantity,
		Sold:     req.Sold,
		Price:    req.Price,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *service) Get(ctx context.Context, id string) (*Stock, error) {
	uid, err := parseRef("id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, uid)
}

func (s *service) List(ctx context.Context, req ListRequest) ([]*Report, error) {
	f := Filter{Limit: req.Limit, Offset: req.Offset}
	if req.StoreID != "" {
		storeID, err := parseRef("store_id", req.StoreID)
		if err != nil {
			return nil, err
		}
		f.StoreID = &storeID
	}
	if req.ItemID != "" {
		itemID, err := parseRef("item_id", req.ItemID)
		if err != nil {
			return nil, err
		}
		f.ItemID = &itemID
	}
	return s.repo.ListReport(ctx, f)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Stock, error) {
	uid, err := parseRef("id", id)
	if err != nil {
		return nil, err
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		return nil, apperror.Validation("quantity cannot be negative")
	}
	if req.Sold != nil && *req.Sold < 0 {
		return nil, apperror.Validation("sold cannot be negative")
	}
	if req.Price != nil && *req.Price < 0 {
		return nil, apperror.Validation("price cannot be negative")
	}
	return s.repo.Update(ctx, uid, Update{
		Quantity: req.Quantity,
		Sold:     req.Sold,
		Price:    req.Price,
	})
}

func (s *service) Adjust(ctx context.Context, req AdjustRequest) (*Stock, error) {
	storeID, err := parseRef("store_id", req.StoreID)
	if err != nil {
		return nil, err
	}
	itemID, err := parseRef("item_id", req.ItemID)
	if err != nil {
		return nil, err
	}
	// Deltas may be negative; the repository clamps results at zero.
	if req.Price != nil && *req.Price < 0 {
		return nil, apperror.Validation("price cannot be negative")
	}
	return s.repo.Adjust(ctx, Adjustment{
		StoreID:  storeID,
		ItemID:   itemID,
		Quantity: req.Quantity,
		Sold:     req.Sold,
		Price:    req.Price,
	})
}

func (s *service) Delete(ctx context.Context, id string) error {
	uid, err := parseRef("id", id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, uid)
}
