package handler

import (
	"encoding/json"
	"net/http"
)

// respondJSON writes v as a JSON response with the given status
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// messageResponse is the body of replies that only carry a message
type messageResponse struct {
	Message string `json:"message"`
}
