// Package response provides JSON response helpers for HTTP handlers.
package response

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// WriteError writes a flat {"error": message} JSON error response
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}

// WriteMessage writes a flat {"message": text} JSON response
func WriteMessage(w http.ResponseWriter, status int, text string) {
	WriteJSON(w, status, map[string]string{"message": text})
}

// WriteText writes a flat {"text": text} JSON response
func WriteText(w http.ResponseWriter, status int, text string) {
	WriteJSON(w, status, map[string]string{"text": text})
}
