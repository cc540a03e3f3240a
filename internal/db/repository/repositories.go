package repository

import (
	"errors"

	"github.com/warungku/warung-service/internal/db"
)

// Sentinel errors surfaced by repositories beyond db.ErrNotFound
var (
	ErrDuplicateUsername = errors.New("username already taken")
	ErrProtectedUser     = errors.New("user cannot be deleted")
)

// Repositories provides access to all repository instances
type Repositories struct {
	User         *UserRepository
	Food         *MenuItemRepository
	Drink        *MenuItemRepository
	Announcement *AnnouncementRepository
}

// NewRepositories creates a new repositories container over a store
func NewRepositories(store *db.Store) *Repositories {
	return &Repositories{
		User:         NewUserRepository(store),
		Food:         NewMenuItemRepository(store, db.CollectionFoods),
		Drink:        NewMenuItemRepository(store, db.CollectionDrinks),
		Announcement: NewAnnouncementRepository(store),
	}
}
