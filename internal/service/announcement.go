package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/warungku/warung-service/internal/db/repository"
	"github.com/warungku/warung-service/internal/models"
)

// AnnouncementService handles announcement business logic
type AnnouncementService struct {
	repos    *repository.Repositories
	validate *validator.Validate
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(repos *repository.Repositories, validate *validator.Validate) *AnnouncementService {
	return &AnnouncementService{
		repos:    repos,
		validate: validate,
	}
}

// List retrieves all announcements
func (s *AnnouncementService) List(ctx context.Context) ([]models.Announcement, error) {
	return s.repos.Announcement.List(ctx)
}

// Create appends a new announcement
func (s *AnnouncementService) Create(ctx context.Context, req models.AnnouncementRequest) (*models.Announcement, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	return s.repos.Announcement.Create(ctx, req)
}
