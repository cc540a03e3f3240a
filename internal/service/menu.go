package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/warungku/warung-service/internal/db/repository"
	"github.com/warungku/warung-service/internal/models"
)

// MenuService handles food and drink business logic. The two menus are
// identical in shape, so every operation takes the kind and picks the
// matching repository.
type MenuService struct {
	repos    *repository.Repositories
	validate *validator.Validate
}

// NewMenuService creates a new menu service
func NewMenuService(repos *repository.Repositories, validate *validator.Validate) *MenuService {
	return &MenuService{
		repos:    repos,
		validate: validate,
	}
}

func (s *MenuService) repo(kind models.MenuKind) *repository.MenuItemRepository {
	if kind == models.MenuKindDrink {
		return s.repos.Drink
	}
	return s.repos.Food
}

// List retrieves all items of a kind
func (s *MenuService) List(ctx context.Context, kind models.MenuKind) ([]models.MenuItem, error) {
	return s.repo(kind).List(ctx)
}

// Get retrieves an item by ID
func (s *MenuService) Get(ctx context.Context, kind models.MenuKind, id int) (*models.MenuItem, error) {
	return s.repo(kind).GetByID(ctx, id)
}

// Create creates a new item
func (s *MenuService) Create(ctx context.Context, kind models.MenuKind, req models.MenuItemRequest) (*models.MenuItem, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	return s.repo(kind).Create(ctx, req)
}

// Update merges the provided fields over an existing item
func (s *MenuService) Update(ctx context.Context, kind models.MenuKind, id int, req models.MenuItemUpdateRequest) (*models.MenuItem, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	return s.repo(kind).Update(ctx, id, req)
}

// Delete deletes an item
func (s *MenuService) Delete(ctx context.Context, kind models.MenuKind, id int) error {
	return s.repo(kind).Delete(ctx, id)
}
