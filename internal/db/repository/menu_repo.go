package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/warungku/warung-service/internal/db"
	"github.com/warungku/warung-service/internal/models"
)

// MenuItemRepository handles data access for one menu collection.
// Foods and drinks share this implementation; each gets its own
// instance bound to its own collection and counter.
type MenuItemRepository struct {
	store      *db.Store
	collection string
}

// NewMenuItemRepository creates a repository over a menu collection
func NewMenuItemRepository(store *db.Store, collection string) *MenuItemRepository {
	return &MenuItemRepository{store: store, collection: collection}
}

// List retrieves all items in insertion order
func (r *MenuItemRepository) List(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.store.View(func() error {
		return r.store.Load(r.collection, &items)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.collection, err)
	}
	return items, nil
}

// GetByID retrieves an item by ID
func (r *MenuItemRepository) GetByID(ctx context.Context, id int) (*models.MenuItem, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, db.ErrNotFound
}

// Create creates a new item, assigning the id from the collection's
// counter and stamping both timestamps.
func (r *MenuItemRepository) Create(ctx context.Context, req models.MenuItemRequest) (*models.MenuItem, error) {
	var created models.MenuItem
	err := r.store.Update(func() error {
		var items []models.MenuItem
		if err := r.store.Load(r.collection, &items); err != nil {
			return err
		}

		id, err := r.store.NextID(r.collection)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		created = models.MenuItem{
			ID:          id,
			Name:        req.Name,
			Price:       req.Price,
			Description: req.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		items = append(items, created)
		if err := r.store.Save(r.collection, items); err != nil {
			return err
		}
		return r.store.CommitID(r.collection)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update merges the provided fields over an existing item and refreshes
// updatedAt. Fields left nil in the request are preserved.
func (r *MenuItemRepository) Update(ctx context.Context, id int, req models.MenuItemUpdateRequest) (*models.MenuItem, error) {
	var updated models.MenuItem
	err := r.store.Update(func() error {
		var items []models.MenuItem
		if err := r.store.Load(r.collection, &items); err != nil {
			return err
		}
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if req.Name != nil {
				items[i].Name = *req.Name
			}
			if req.Price != nil {
				items[i].Price = *req.Price
			}
			if req.Description != nil {
				items[i].Description = *req.Description
			}
			items[i].UpdatedAt = time.Now().UTC()
			updated = items[i]
			return r.store.Save(r.collection, items)
		}
		return db.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an item
func (r *MenuItemRepository) Delete(ctx context.Context, id int) error {
	return r.store.Update(func() error {
		var items []models.MenuItem
		if err := r.store.Load(r.collection, &items); err != nil {
			return err
		}
		for i := range items {
			if items[i].ID != id {
				continue
			}
			items = append(items[:i], items[i+1:]...)
			return r.store.Save(r.collection, items)
		}
		return db.ErrNotFound
	})
}
