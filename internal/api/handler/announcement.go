package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/warungku/warung-service/internal/api"
	"github.com/warungku/warung-service/internal/models"
	"github.com/warungku/warung-service/internal/service"
	"github.com/warungku/warung-service/internal/websockets"
)

// AnnouncementHandler handles announcement requests. Listing is public;
// creation is admin-only and wired behind the admin chain in the router.
type AnnouncementHandler struct {
	announcementService *service.AnnouncementService
	hub                 *websockets.Hub
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(announcementService *service.AnnouncementService, hub *websockets.Hub) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementService: announcementService,
		hub:                 hub,
	}
}

// List handles GET /announcements
func (h *AnnouncementHandler) List(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.announcementService.List(r.Context())
	if err != nil {
		api.InternalServerError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, announcements)
}

// Create handles POST /announcements
func (h *AnnouncementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.AnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.BadRequest(w, "Invalid request body")
		return
	}

	announcement, err := h.announcementService.Create(r.Context(), req)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			api.BadRequest(w, "Title and content are required")
			return
		}
		api.InternalServerError(w, err)
		return
	}

	h.hub.BroadcastDataUpdate("announcements", "create", announcement.ID)

	respondJSON(w, http.StatusCreated, announcement)
}
