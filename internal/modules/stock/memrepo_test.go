package stock

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alexken/stockroom/internal/apperror"
)

type pair struct{ storeID, itemID uuid.UUID }

// memRepo is an in-memory Repository with the same error contract as the
// postgres implementation, including foreign-key and unique-pair behavior.
// The name lookups stand in for the stores/items tables; a nil lookup
// accepts every reference.
type memRepo struct {
	mu        sync.Mutex
	records   map[uuid.UUID]*Stock
	byPair    map[pair]uuid.UUID
	storeName func(uuid.UUID) (string, bool)
	itemName  func(uuid.UUID) (string, bool)
}

func newMemRepo() *memRepo {
	return &memRepo{
		records: map[uuid.UUID]*Stock{},
		byPair:  map[pair]uuid.UUID{},
	}
}

func (m *memRepo) refsExist(storeID, itemID uuid.UUID) bool {
	if m.storeName != nil {
		if _, ok := m.storeName(storeID); !ok {
			return false
		}
	}
	if m.itemName != nil {
		if _, ok := m.itemName(itemID); !ok {
			return false
		}
	}
	return true
}

func (m *memRepo) Create(ctx context.Context, s *Stock) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.refsExist(s.StoreID, s.ItemID) {
		return apperror.Conflict("referenced record in use or missing (stock_store_id_fkey)")
	}
	p := pair{s.StoreID, s.ItemID}
	if _, ok := m.byPair[p]; ok {
		return apperror.Conflict("duplicate record (stock_store_id_item_id_key)")
	}
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	cp := *s
	m.records[s.ID] = &cp
	m.byPair[p] = s.ID
	return nil
}

func (m *memRepo) GetByID(ctx context.Context, id uuid.UUID) (*Stock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.records[id]
	if !ok {
		return nil, apperror.NotFound("stock record %s not found", id)
	}
	cp := *s
	return &cp, nil
}

func (m *memRepo) names(s *Stock) (item, store string) {
	if m.itemName != nil {
		item, _ = m.itemName(s.ItemID)
	}
	if m.storeName != nil {
		store, _ = m.storeName(s.StoreID)
	}
	return item, store
}

func (m *memRepo) ListReport(ctx context.Context, f Filter) ([]*Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Report
	for _, s := range m.records {
		if f.StoreID != nil && s.StoreID != *f.StoreID {
			continue
		}
		if f.ItemID != nil && s.ItemID != *f.ItemID {
			continue
		}
		item, store := m.names(s)
		out = append(out, &Report{Stock: *s, Item: item, Store: store})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Item != out[j].Item {
			return out[i].Item < out[j].Item
		}
		return out[i].Store < out[j].Store
	})
	if f.Offset >= len(out) {
		return nil, nil
	}
	out = out[f.Offset:]
	if f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m *memRepo) Update(ctx context.Context, id uuid.UUID, upd Update) (*Stock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.records[id]
	if !ok {
		return nil, apperror.NotFound("stock record %s not found", id)
	}
	if upd.Quantity != nil {
		s.Quantity = *upd.Quantity
	}
	if upd.Sold != nil {
		s.Sold = *upd.Sold
	}
	if upd.Price != nil {
		s.Price = *upd.Price
	}
	s.UpdatedAt = time.Now()
	cp := *s
	return &cp, nil
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func (m *memRepo) Adjust(ctx context.Context, a Adjustment) (*Stock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.refsExist(a.StoreID, a.ItemID) {
		return nil, apperror.Conflict("referenced record in use or missing (stock_store_id_fkey)")
	}
	p := pair{a.StoreID, a.ItemID}
	id, ok := m.byPair[p]
	if !ok {
		s := &Stock{ID: uuid.New(), StoreID: a.StoreID, ItemID: a.ItemID}
		if a.Quantity != nil {
			s.Quantity = clamp(*a.Quantity)
		}
		if a.Sold != nil {
			s.Sold = clamp(*a.Sold)
		}
		if a.Price != nil {
			s.Price = *a.Price
		}
		s.CreatedAt = time.Now()
		s.UpdatedAt = s.CreatedAt
		m.records[s.ID] = s
		m.byPair[p] = s.ID
		cp := *s
		return &cp, nil
	}
	s := m.records[id]
	if a.Quantity != nil {
		s.Quantity = clamp(s.Quantity + *a.Quantity)
	}
	if a.Sold != nil {
		s.Sold = clamp(s.Sold + *a.Sold)
	}
	if a.Price != nil {
		s.Price = *a.Price
	}
	s.UpdatedAt = time.Now()
	cp := *s
	return &cp, nil
}

func (m *memRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.records[id]
	if !ok {
		return apperror.NotFound("stock record %s not found", id)
	}
	delete(m.byPair, pair{s.StoreID, s.ItemID})
	delete(m.records, id)
	return nil
}
