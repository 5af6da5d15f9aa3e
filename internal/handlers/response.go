package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error body returned by every endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Human-readable error message
	// default: Server error
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}
