package handler

import (
	"net/http"

	"github.com/warungku/warung-service/internal/websockets"
)

// WebSocketHandler upgrades connections onto the data-update feed
type WebSocketHandler struct {
	hub *websockets.Hub
}

// NewWebSocketHandler creates a new websocket handler
func NewWebSocketHandler(hub *websockets.Hub) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
	}
}

// HandleWS handles GET /ws
func (h *WebSocketHandler) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websockets.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already written the error to the response
		return
	}

	websockets.ServeWs(h.hub, conn)
}
