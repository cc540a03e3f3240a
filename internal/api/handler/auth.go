package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/warungku/warung-service/internal/api"
	"github.com/warungku/warung-service/internal/db/repository"
	"github.com/warungku/warung-service/internal/models"
	"github.com/warungku/warung-service/internal/service"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// HandleRegister handles POST /auth/register
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.MethodNotAllowed(w)
		return
	}

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.BadRequest(w, "Invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" || req.Email == "" {
		api.BadRequest(w, "All fields are required")
		return
	}

	user, err := h.authService.Register(r.Context(), req)
	if err != nil {
		var validationErrs validator.ValidationErrors
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			api.BadRequest(w, "Username already taken")
		case errors.As(err, &validationErrs):
			api.BadRequest(w, "Invalid registration data: "+validationErrs.Error())
		default:
			api.InternalServerError(w, err)
		}
		return
	}

	respondJSON(w, http.StatusCreated, struct {
		Message string            `json:"message"`
		User    models.PublicUser `json:"user"`
	}{
		Message: "Registration successful",
		User:    user.Public(),
	})
}

// HandleLogin handles POST /auth/login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.MethodNotAllowed(w)
		return
	}

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.BadRequest(w, "Invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		api.BadRequest(w, "Username and password are required")
		return
	}

	token, user, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			api.Unauthorized(w, "Invalid username or password")
			return
		}
		api.InternalServerError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Message string            `json:"message"`
		Token   string            `json:"token"`
		User    models.PublicUser `json:"user"`
	}{
		Message: "Login successful",
		Token:   token,
		User:    user.Public(),
	})
}
