package service

import (
	"github.com/go-playground/validator/v10"

	"github.com/warungku/warung-service/internal/db"
	"github.com/warungku/warung-service/internal/db/repository"
)

// Services bundles all service instances for the router
type Services struct {
	Auth         *AuthService
	Menu         *MenuService
	Announcement *AnnouncementService
	Admin        *AdminService
}

// New creates all services over the shared repositories and store
func New(repos *repository.Repositories, store *db.Store, jwtConfig JWTConfig) *Services {
	validate := validator.New()
	return &Services{
		Auth:         NewAuthService(repos, jwtConfig, validate),
		Menu:         NewMenuService(repos, validate),
		Announcement: NewAnnouncementService(repos, validate),
		Admin:        NewAdminService(repos, store),
	}
}
