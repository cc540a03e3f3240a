package repository

import (
	"context"
	"fmt"

	"github.com/warungku/warung-service/internal/db"
	"github.com/warungku/warung-service/internal/models"
)

// UserRepository handles user data access
type UserRepository struct {
	store *db.Store
}

// NewUserRepository creates a new user repository
func NewUserRepository(store *db.Store) *UserRepository {
	return &UserRepository{store: store}
}

// List retrieves all users in insertion order
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.store.View(func() error {
		return r.store.Load(db.CollectionUsers, &users)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, db.ErrNotFound
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, db.ErrNotFound
}

// Create creates a new user. The id comes from the users counter and
// the role is always forced to "user" no matter what the caller set;
// the only admin is the seeded superuser.
func (r *UserRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	var created models.User
	err := r.store.Update(func() error {
		var users []models.User
		if err := r.store.Load(db.CollectionUsers, &users); err != nil {
			return err
		}
		for _, u := range users {
			if u.Username == user.Username {
				return ErrDuplicateUsername
			}
		}

		id, err := r.store.NextID(db.CollectionUsers)
		if err != nil {
			return err
		}

		created = user
		created.ID = id
		created.Role = models.RoleUser

		users = append(users, created)
		if err := r.store.Save(db.CollectionUsers, users); err != nil {
			return err
		}
		return r.store.CommitID(db.CollectionUsers)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update merges the provided fields over an existing user. The username
// is immutable and never touched.
func (r *UserRepository) Update(ctx context.Context, id int, req models.UserUpdateRequest) (*models.User, error) {
	var updated models.User
	err := r.store.Update(func() error {
		var users []models.User
		if err := r.store.Load(db.CollectionUsers, &users); err != nil {
			return err
		}
		for i := range users {
			if users[i].ID != id {
				continue
			}
			if req.Email != nil {
				users[i].Email = *req.Email
			}
			if req.Password != nil {
				users[i].Password = *req.Password
			}
			updated = users[i]
			return r.store.Save(db.CollectionUsers, users)
		}
		return db.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a user. The seeded superuser is protected and can
// never be deleted, by anyone.
func (r *UserRepository) Delete(ctx context.Context, id int) error {
	return r.store.Update(func() error {
		var users []models.User
		if err := r.store.Load(db.CollectionUsers, &users); err != nil {
			return err
		}
		for i := range users {
			if users[i].ID != id {
				continue
			}
			if users[i].Username == models.SuperuserName {
				return ErrProtectedUser
			}
			users = append(users[:i], users[i+1:]...)
			return r.store.Save(db.CollectionUsers, users)
		}
		return db.ErrNotFound
	})
}
