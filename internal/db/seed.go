package db

import (
	"fmt"
	"time"

	"github.com/warungku/warung-service/internal/models"
	"github.com/warungku/warung-service/internal/security"
)

// seed writes the fixed default dataset: the superuser admin, two foods,
// two drinks, two announcements and counters already advanced past the
// seeded records. Caller must hold the store lock.
func (s *Store) seed() error {
	superuserHash, err := security.HashPassword(models.SuperuserName)
	if err != nil {
		return fmt.Errorf("failed to hash superuser password: %w", err)
	}

	now := time.Now().UTC()

	users := []models.User{
		{
			ID:       1,
			Username: models.SuperuserName,
			Password: superuserHash,
			Role:     models.RoleAdmin,
			Email:    "superuser@admin.com",
		},
	}

	foods := []models.MenuItem{
		{ID: 1, Name: "Nasi Goreng", Price: 25000, Description: "Nasi goreng spesial dengan telur", CreatedAt: now, UpdatedAt: now},
		{ID: 2, Name: "Mie Ayam", Price: 20000, Description: "Mie ayam dengan pangsit", CreatedAt: now, UpdatedAt: now},
	}

	drinks := []models.MenuItem{
		{ID: 1, Name: "Es Teh", Price: 5000, Description: "Es teh manis segar", CreatedAt: now, UpdatedAt: now},
		{ID: 2, Name: "Jus Jeruk", Price: 12000, Description: "Jus jeruk segar tanpa gula", CreatedAt: now, UpdatedAt: now},
	}

	announcements := []models.Announcement{
		{
			ID:      1,
			Title:   "Selamat Datang di CRUD App!",
			Content: "Aplikasi ini dibuat untuk pembelajaran API testing dengan fitur lengkap CRUD operations.",
			Date:    now,
		},
		{
			ID:      2,
			Title:   "Panduan Penggunaan",
			Content: "Login dengan superuser/superuser untuk akses admin. User biasa bisa mendaftar melalui halaman register.",
			Date:    now,
		},
	}

	counters := models.Counters{
		Users:         2,
		Foods:         3,
		Drinks:        3,
		Announcements: 3,
	}

	if err := s.Save(CollectionUsers, users); err != nil {
		return err
	}
	if err := s.Save(CollectionFoods, foods); err != nil {
		return err
	}
	if err := s.Save(CollectionDrinks, drinks); err != nil {
		return err
	}
	if err := s.Save(CollectionAnnouncements, announcements); err != nil {
		return err
	}
	return s.Save(countersFile, counters)
}
