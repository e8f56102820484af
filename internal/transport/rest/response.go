package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/heartmarshall/pathwise-backend/internal/domain"
)

// maxBodyBytes bounds request bodies. Backgrounds top out at 2000 characters.
const maxBodyBytes = 64 << 10

type errorResponse struct {
	Error             string       `json:"error"`
	Fields            []fieldError `json:"fields,omitempty"`
	RetryAfterSeconds int          `json:"retryAfterSeconds,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// decodeBody reads a JSON request body into dst. Unknown fields are rejected.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// handleError maps service errors to HTTP responses. Unknown errors are
// logged and hidden behind a 500.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *domain.ValidationError
	var quotaErr *domain.QuotaExceededError

	switch {
	case errors.As(err, &validationErr):
		resp := errorResponse{Error: "validation failed"}
		for _, fe := range validationErr.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &quotaErr):
		secs := quotaErr.RetryAfterSeconds()
		w.Header().Set("Retry-After", strconv.Itoa(secs))
		writeJSON(w, http.StatusTooManyRequests, errorResponse{
			Error:             "suggestion quota exceeded",
			RetryAfterSeconds: secs,
		})
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict, retry the request")
	default:
		log.ErrorContext(r.Context(), "request failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
