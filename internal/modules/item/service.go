package item

import (
	"context"

	"github.com/google/uuid"

	"github.com/alexken/stockroom/internal/apperror"
)

// Service defines item business logic.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Item, error)
	Get(ctx context.Context, id string) (*Item, error)
	GetByName(ctx context.Context, name string) (*Item, error)
	List(ctx context.Context, limit, offset int) ([]*Item, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Item, error)
	Delete(ctx context.Context, id string) error
}

// CreateRequest holds data for creating an item.
type CreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateRequest holds a partial item update; absent fields are untouched.
type UpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type service struct {
	repo Repository
}

// NewService creates a new item service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func parseID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperror.Validation("invalid item id %q", id)
	}
	return uid, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Item, error) {
	if req.Name == "" {
		return nil, apperror.Validation("name is required")
	}
	it := &Item{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) Get(ctx context.Context, id string) (*Item, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, uid)
}

func (s *service) GetByName(ctx context.Context, name string) (*Item, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *service) List(ctx context.Context, limit, offset int) ([]*Item, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Item, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil && *req.Name == "" {
		return nil, apperror.Validation("name cannot be empty")
	}
	return s.repo.Update(ctx, uid, Update{
		Name:        req.Name,
		Description: req.Description,
	})
}

func (s *service) Delete(ctx context.Context, id string) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, uid)
}
