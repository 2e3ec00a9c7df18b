package api

import (
	"encoding/json"
	"net/http"

	"github.com/rangekit/rangefetch/internal/log"
)

type errorResponse struct {
	Error string `json:"error"`
}

// WriteJSON serializes v as the response body with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}

// WriteNotFound writes a 404 error response.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusNotFound, errorResponse{Error: message})
}

// WriteInvalidRequest writes a 400 error response.
func WriteInvalidRequest(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusBadRequest, errorResponse{Error: message})
}

// WriteInternalError writes a 500 error response.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: message})
}
