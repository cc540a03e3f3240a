// internal/router/router.go
package router

import (
	"net/http"

	"github.com/warungku/warung-service/internal/api"
	"github.com/warungku/warung-service/internal/api/handler"
	"github.com/warungku/warung-service/internal/middleware"
	"github.com/warungku/warung-service/internal/models"
	"github.com/warungku/warung-service/internal/service"
	"github.com/warungku/warung-service/internal/websockets"
)

// Router handles HTTP routing
type Router struct {
	mux     *http.ServeMux
	handler http.Handler
}

// New creates a new router over the services and the event hub
func New(services *service.Services, hub *websockets.Hub) *Router {
	r := &Router{
		mux: http.NewServeMux(),
	}

	wsHandler := handler.NewWebSocketHandler(hub)
	r.setupRoutes(services, hub)

	// The websocket upgrade needs the raw ResponseWriter (it hijacks the
	// connection), so it stays outside the logging chain.
	outer := http.NewServeMux()
	outer.HandleFunc("/ws", wsHandler.HandleWS)
	outer.Handle("/", middleware.Logger(r.mux))
	r.handler = outer

	return r
}

// ServeHTTP implements the http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

// setupRoutes sets up the routes for the router
func (r *Router) setupRoutes(services *service.Services, hub *websockets.Hub) {
	authHandler := handler.NewAuthHandler(services.Auth)
	userHandler := handler.NewUserHandler(services.Auth, hub)
	menuHandler := handler.NewMenuHandler(services.Menu, hub)
	announcementHandler := handler.NewAnnouncementHandler(services.Announcement, hub)
	adminHandler := handler.NewAdminHandler(services.Admin, hub)

	authed := middleware.Auth(services.Auth)
	adminOnly := func(next http.Handler) http.Handler {
		return authed(middleware.RequireRole(models.RoleAdmin)(next))
	}

	// Public routes
	r.mux.HandleFunc("/auth/register", authHandler.HandleRegister)
	r.mux.HandleFunc("/auth/login", authHandler.HandleLogin)

	// Announcements: reading is public, posting is admin-only
	r.mux.Handle("/announcements", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case http.MethodGet:
			announcementHandler.List(w, req)
		case http.MethodPost:
			adminOnly(http.HandlerFunc(announcementHandler.Create)).ServeHTTP(w, req)
		default:
			api.MethodNotAllowed(w)
		}
	}))

	// Authenticated routes
	r.mux.Handle("/profile", authed(http.HandlerFunc(userHandler.HandleProfile)))
	r.mux.Handle("/foods", authed(http.HandlerFunc(menuHandler.HandleFoods)))
	r.mux.Handle("/foods/", authed(http.HandlerFunc(menuHandler.HandleFoods)))
	r.mux.Handle("/drinks", authed(http.HandlerFunc(menuHandler.HandleDrinks)))
	r.mux.Handle("/drinks/", authed(http.HandlerFunc(menuHandler.HandleDrinks)))

	// Admin routes
	r.mux.Handle("/users", adminOnly(http.HandlerFunc(userHandler.HandleUsers)))
	r.mux.Handle("/users/", adminOnly(http.HandlerFunc(userHandler.HandleUsers)))
	r.mux.Handle("/admin/data", adminOnly(http.HandlerFunc(adminHandler.HandleData)))
}
