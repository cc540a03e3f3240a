package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/warungku/warung-service/internal/api"
	"github.com/warungku/warung-service/internal/db"
	"github.com/warungku/warung-service/internal/models"
	"github.com/warungku/warung-service/internal/service"
	"github.com/warungku/warung-service/internal/websockets"
)

// MenuHandler handles food and drink requests. Both menus share one
// implementation parameterized by kind.
type MenuHandler struct {
	menuService *service.MenuService
	hub         *websockets.Hub
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService, hub *websockets.Hub) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
		hub:         hub,
	}
}

// HandleFoods handles requests for /foods and /foods/{id}
func (h *MenuHandler) HandleFoods(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "/foods", models.MenuKindFood)
}

// HandleDrinks handles requests for /drinks and /drinks/{id}
func (h *MenuHandler) HandleDrinks(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "/drinks", models.MenuKindDrink)
}

func (h *MenuHandler) handle(w http.ResponseWriter, r *http.Request, prefix string, kind models.MenuKind) {
	// Extract the ID from path
	path := strings.TrimPrefix(r.URL.Path, prefix)
	path = strings.TrimPrefix(path, "/")

	switch r.Method {
	case http.MethodGet:
		if path == "" {
			h.list(w, r, kind)
			return
		}
		id, err := strconv.Atoi(path)
		if err != nil {
			api.BadRequest(w, "Invalid "+label(kind)+" ID")
			return
		}
		h.get(w, r, kind, id)

	case http.MethodPost:
		if path != "" {
			api.BadRequest(w, "Invalid request path")
			return
		}
		h.create(w, r, kind)

	case http.MethodPut:
		id, err := strconv.Atoi(path)
		if err != nil {
			api.BadRequest(w, "Invalid "+label(kind)+" ID")
			return
		}
		h.update(w, r, kind, id)

	case http.MethodDelete:
		id, err := strconv.Atoi(path)
		if err != nil {
			api.BadRequest(w, "Invalid "+label(kind)+" ID")
			return
		}
		h.delete(w, r, kind, id)

	default:
		api.MethodNotAllowed(w)
	}
}

// label returns the entity name used in messages
func label(kind models.MenuKind) string {
	if kind == models.MenuKindDrink {
		return "Drink"
	}
	return "Food"
}

// entity returns the collection name used in broadcast events
func entity(kind models.MenuKind) string {
	if kind == models.MenuKindDrink {
		return "drinks"
	}
	return "foods"
}

// list lists all items of a kind
func (h *MenuHandler) list(w http.ResponseWriter, r *http.Request, kind models.MenuKind) {
	items, err := h.menuService.List(r.Context(), kind)
	if err != nil {
		api.InternalServerError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, items)
}

// get gets an item by ID
func (h *MenuHandler) get(w http.ResponseWriter, r *http.Request, kind models.MenuKind, id int) {
	item, err := h.menuService.Get(r.Context(), kind, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			api.NotFound(w, label(kind)+" not found")
			return
		}
		api.InternalServerError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// create creates a new item
func (h *MenuHandler) create(w http.ResponseWriter, r *http.Request, kind models.MenuKind) {
	var req models.MenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.BadRequest(w, "Invalid request body")
		return
	}

	item, err := h.menuService.Create(r.Context(), kind, req)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			api.BadRequest(w, "Name and price are required")
			return
		}
		api.InternalServerError(w, err)
		return
	}

	h.hub.BroadcastDataUpdate(entity(kind), "create", item.ID)

	respondJSON(w, http.StatusCreated, item)
}

// update merges the provided fields over an existing item
func (h *MenuHandler) update(w http.ResponseWriter, r *http.Request, kind models.MenuKind, id int) {
	var req models.MenuItemUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.BadRequest(w, "Invalid request body")
		return
	}

	item, err := h.menuService.Update(r.Context(), kind, id, req)
	if err != nil {
		var validationErrs validator.ValidationErrors
		switch {
		case errors.Is(err, db.ErrNotFound):
			api.NotFound(w, label(kind)+" not found")
		case errors.As(err, &validationErrs):
			api.BadRequest(w, "Invalid "+label(kind)+" data: "+validationErrs.Error())
		default:
			api.InternalServerError(w, err)
		}
		return
	}

	h.hub.BroadcastDataUpdate(entity(kind), "update", item.ID)

	respondJSON(w, http.StatusOK, item)
}

// delete deletes an item
func (h *MenuHandler) delete(w http.ResponseWriter, r *http.Request, kind models.MenuKind, id int) {
	err := h.menuService.Delete(r.Context(), kind, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			api.NotFound(w, label(kind)+" not found")
			return
		}
		api.InternalServerError(w, err)
		return
	}

	h.hub.BroadcastDataUpdate(entity(kind), "delete", id)

	respondJSON(w, http.StatusOK, messageResponse{Message: label(kind) + " deleted successfully"})
}
