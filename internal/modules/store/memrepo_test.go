package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alexken/stockroom/internal/apperror"
)

// memRepo is an in-memory Repository with the same error contract as the
// postgres implementation.
type memRepo struct {
	mu     sync.Mutex
	stores map[uuid.UUID]*Store
}

func newMemRepo() *memRepo {
	return &memRepo{stores: map[uuid.UUID]*Store{}}
}

func (m *memRepo) nameTaken(name string, except uuid.UUID) bool {
	for _, s := range m.stores {
		if s.Name == name && s.ID != except {
			return true
		}
	}
	return false
}

func (m *memRepo) Create(ctx context.Context, s *Store) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.nameTaken(s.Name, s.ID) {
		return apperror.Conflict("duplicate record (stores_name_key)")
	}
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	cp := *s
	m.stores[s.ID] = &cp
	return nil
}

func (m *memRepo) GetByID(ctx context.Context, id uuid.UUID) (*Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stores[id]
	if !ok {
		return nil, apperror.NotFound("store %s not found", id)
	}
	cp := *s
	return &cp, nil
}

func (m *memRepo) GetByName(ctx context.Context, name string) (*Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.stores {
		if s.Name == name {
			cp := *s
			return &cp, nil
		}
	}
	return nil, apperror.NotFound("store %q not found", name)
}

func (m *memRepo) List(ctx context.Context, limit, offset int) ([]*Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Store
	for _, s := range m.stores {
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *memRepo) Update(ctx context.Context, id uuid.UUID, upd Update) (*Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stores[id]
	if !ok {
		return nil, apperror.NotFound("store %s not found", id)
	}
	if upd.Name != nil {
		if m.nameTaken(*upd.Name, id) {
			return nil, apperror.Conflict("duplicate record (stores_name_key)")
		}
		s.Name = *upd.Name
	}
	if upd.Description != nil {
		s.Description = *upd.Description
	}
	if upd.Address != nil {
		s.Address = *upd.Address
	}
	s.UpdatedAt = time.Now()
	cp := *s
	return &cp, nil
}

func (m *memRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.stores[id]; !ok {
		return apperror.NotFound("store %s not found", id)
	}
	delete(m.stores, id)
	return nil
}
