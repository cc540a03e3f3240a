package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/warungku/warung-service/internal/db"
	"github.com/warungku/warung-service/internal/models"
)

// AnnouncementRepository handles announcement data access.
// Announcements are append-only: no update, no delete.
type AnnouncementRepository struct {
	store *db.Store
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(store *db.Store) *AnnouncementRepository {
	return &AnnouncementRepository{store: store}
}

// List retrieves all announcements in insertion order
func (r *AnnouncementRepository) List(ctx context.Context) ([]models.Announcement, error) {
	var announcements []models.Announcement
	err := r.store.View(func() error {
		return r.store.Load(db.CollectionAnnouncements, &announcements)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	return announcements, nil
}

// Create appends a new announcement, stamping its date
func (r *AnnouncementRepository) Create(ctx context.Context, req models.AnnouncementRequest) (*models.Announcement, error) {
	var created models.Announcement
	err := r.store.Update(func() error {
		var announcements []models.Announcement
		if err := r.store.Load(db.CollectionAnnouncements, &announcements); err != nil {
			return err
		}

		id, err := r.store.NextID(db.CollectionAnnouncements)
		if err != nil {
			return err
		}

		created = models.Announcement{
			ID:      id,
			Title:   req.Title,
			Content: req.Content,
			Date:    time.Now().UTC(),
		}

		announcements = append(announcements, created)
		if err := r.store.Save(db.CollectionAnnouncements, announcements); err != nil {
			return err
		}
		return r.store.CommitID(db.CollectionAnnouncements)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}
