package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/alexken/stockroom/internal/apperror"
)

// Service defines store business logic.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Store, error)
	Get(ctx context.Context, id string) (*Store, error)
	GetByName(ctx context.Context, name string) (*Store, error)
	List(ctx context.Context, limit, offset int) ([]*Store, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Store, error)
	Delete(ctx context.Context, id string) error
}

// CreateRequest holds data for creating a store.
type CreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
}

// UpdateRequest holds a partial store update; absent fields are untouched.
type UpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
}

type service struct {
	repo Repository
}

// NewService creates a new store service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func parseID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperror.Validation("invalid store id %q", id)
	}
	return uid, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Store, error) {
	if req.Name == "" {
		return nil, apperror.Validation("name is required")
	}
	st := &Store{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
	}
	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *service) Get(ctx context.Context, id string) (*Store, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, uid)
}

func (s *service) GetByName(ctx context.Context, name string) (*Store, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *service) List(ctx context.Context, limit, offset int) ([]*Store, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Store, error) {
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
		Address:     req.Address,
	})
}

func (s *service) Delete(ctx context.Context, id string) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, uid)
}
