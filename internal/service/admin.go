package service

import (
	"context"
	"time"

	"github.com/warungku/warung-service/internal/db"
	"github.com/warungku/warung-service/internal/db/repository"
)

// DataStats reports record counts per collection for the admin dashboard
type DataStats struct {
	Users         int       `json:"users"`
	Foods         int       `json:"foods"`
	Drinks        int       `json:"drinks"`
	Announcements int       `json:"announcements"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

// AdminService handles the whole-store administrative actions
type AdminService struct {
	repos *repository.Repositories
	store *db.Store
}

// NewAdminService creates a new admin service
func NewAdminService(repos *repository.Repositories, store *db.Store) *AdminService {
	return &AdminService{
		repos: repos,
		store: store,
	}
}

// Stats returns record counts for every collection
func (s *AdminService) Stats(ctx context.Context) (*DataStats, error) {
	users, err := s.repos.User.List(ctx)
	if err != nil {
		return nil, err
	}
	foods, err := s.repos.Food.List(ctx)
	if err != nil {
		return nil, err
	}
	drinks, err := s.repos.Drink.List(ctx)
	if err != nil {
		return nil, err
	}
	announcements, err := s.repos.Announcement.List(ctx)
	if err != nil {
		return nil, err
	}

	return &DataStats{
		Users:         len(users),
		Foods:         len(foods),
		Drinks:        len(drinks),
		Announcements: len(announcements),
		LastUpdated:   time.Now().UTC(),
	}, nil
}

// Backup snapshots the current persisted state and returns its location
func (s *AdminService) Backup() (string, error) {
	return s.store.Backup()
}

// Reset restores the store to the fixed default dataset
func (s *AdminService) Reset() error {
	return s.store.Reset()
}
