package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/warungku/warung-service/internal/api"
	"github.com/warungku/warung-service/internal/db"
	"github.com/warungku/warung-service/internal/db/repository"
	"github.com/warungku/warung-service/internal/middleware"
	"github.com/warungku/warung-service/internal/models"
	"github.com/warungku/warung-service/internal/service"
	"github.com/warungku/warung-service/internal/websockets"
)

// UserHandler handles profile and user administration requests
type UserHandler struct {
	authService *service.AuthService
	hub         *websockets.Hub
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *service.AuthService, hub *websockets.Hub) *UserHandler {
	return &UserHandler{
		authService: authService,
		hub:         hub,
	}
}

// HandleProfile handles GET /profile for the authenticated user
func (h *UserHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.MethodNotAllowed(w)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		api.Unauthorized(w, "Authentication required")
		return
	}

	user, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		// The token may outlive the account it was issued for
		if errors.Is(err, db.ErrNotFound) {
			api.NotFound(w, "User not found")
			return
		}
		api.InternalServerError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		User models.PublicUser `json:"user"`
	}{
		User: user.Public(),
	})
}

// HandleUsers handles admin requests for /users and /users/{id}
func (h *UserHandler) HandleUsers(w http.ResponseWriter, r *http.Request) {
	// Extract the ID from path
	path := strings.TrimPrefix(r.URL.Path, "/users")
	path = strings.TrimPrefix(path, "/")

	switch r.Method {
	case http.MethodGet:
		if path != "" {
			api.MethodNotAllowed(w)
			return
		}
		h.listUsers(w, r)

	case http.MethodDelete:
		id, err := strconv.Atoi(path)
		if err != nil {
			api.BadRequest(w, "Invalid user ID")
			return
		}
		h.deleteUser(w, r, id)

	default:
		api.MethodNotAllowed(w)
	}
}

// listUsers lists all users without their password hashes
func (h *UserHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		api.InternalServerError(w, err)
		return
	}

	public := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}

	respondJSON(w, http.StatusOK, public)
}

// deleteUser deletes a user. Both "not found" and "protected superuser"
// come back as 400, matching the original contract.
func (h *UserHandler) deleteUser(w http.ResponseWriter, r *http.Request, id int) {
	err := h.authService.DeleteUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) || errors.Is(err, repository.ErrProtectedUser) {
			api.BadRequest(w, "User cannot be deleted or not found")
			return
		}
		api.InternalServerError(w, err)
		return
	}

	h.hub.BroadcastDataUpdate("users", "delete", id)

	respondJSON(w, http.StatusOK, messageResponse{Message: "User deleted successfully"})
}
