package websockets

import (
	"encoding/json"
	"log"
)

// Event is the message pushed to connected clients when durable state
// changes, so dashboards can refresh without polling.
type Event struct {
	Type string    `json:"type"`
	Data EventData `json:"data"`
}

// EventData identifies what changed
type EventData struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	ID     int    `json:"id,omitempty"`
}

// Hub tracks connected clients and fans out events to all of them
type Hub struct {
	clients map[*Client]bool

	register chan *Client

	unregister chan *Client

	broadcast chan []byte
}

func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// BroadcastMessage sends a raw message to every connected client
func (h *Hub) BroadcastMessage(message []byte) {
	h.broadcast <- message
}

// BroadcastDataUpdate sends a data.update event for a changed record.
// An id of 0 means the whole collection changed.
func (h *Hub) BroadcastDataUpdate(entity, action string, id int) {
	event := Event{
		Type: "data.update",
		Data: EventData{
			Entity: entity,
			Action: action,
			ID:     id,
		},
	}

	message, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling event: %v", err)
		return
	}

	h.broadcast <- message
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}
