package middleware

import (
	"net/http"

	json "github.com/goccy/go-json"
)

type errorBody struct {
	Error string `json:"error"`
}

// writeError writes the same {"error": "..."} body the REST handlers use.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: msg})
}
