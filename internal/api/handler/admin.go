package handler

import (
	"encoding/json"
	"net/http"

	"github.com/warungku/warung-service/internal/api"
	"github.com/warungku/warung-service/internal/service"
	"github.com/warungku/warung-service/internal/websockets"
)

// AdminHandler handles the /admin/data endpoint
type AdminHandler struct {
	adminService *service.AdminService
	hub          *websockets.Hub
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *service.AdminService, hub *websockets.Hub) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		hub:          hub,
	}
}

// HandleData handles GET (statistics) and POST (backup/reset actions)
func (h *AdminHandler) HandleData(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.stats(w, r)
	case http.MethodPost:
		h.action(w, r)
	default:
		api.MethodNotAllowed(w)
	}
}

// stats returns record counts per collection
func (h *AdminHandler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.Stats(r.Context())
	if err != nil {
		api.InternalServerError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// action runs a whole-store administrative action
func (h *AdminHandler) action(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Action string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.BadRequest(w, "Invalid request body")
		return
	}

	switch req.Action {
	case "backup":
		backupPath, err := h.adminService.Backup()
		if err != nil {
			api.InternalServerError(w, err)
			return
		}

		h.hub.BroadcastDataUpdate("data", "backup", 0)

		respondJSON(w, http.StatusOK, struct {
			Message    string `json:"message"`
			BackupPath string `json:"backupPath"`
		}{
			Message:    "Backup created successfully",
			BackupPath: backupPath,
		})

	case "reset":
		if err := h.adminService.Reset(); err != nil {
			api.InternalServerError(w, err)
			return
		}

		h.hub.BroadcastDataUpdate("data", "reset", 0)

		respondJSON(w, http.StatusOK, messageResponse{Message: "Data reset to defaults"})

	default:
		api.BadRequest(w, "Invalid action")
	}
}
