package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dangerclosesec/resadmin/internal/domain"
)

type ErrorResponse struct { // TypeGen: ErrorResponse
	BaseResponse
	Error   string              `json:"error"`
	Details *[]string           `json:"details,omitempty"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
	Code    *string             `json:"error_code,omitempty"`
}

type BaseResponse struct { // TypeGen: DefaultResponse
	Ok bool `json:"ok"`
}

// ListResponse is one page of a listing together with the total match count
type ListResponse[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}

// handleError maps domain errors onto HTTP status codes
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr *domain.ValidationError
		ierr *domain.IntegrityError
	)

	switch {
	case errors.As(err, &verr):
		code := "validation_failed"
		details := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			details = append(details, f.String())
		}
		respondWithJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:   verr.Error(),
			Details: &details,
			Fields:  verr.Fields,
			Code:    &code,
		})
	case errors.As(err, &ierr):
		code := "integrity_violation"
		respondWithJSON(w, http.StatusConflict, ErrorResponse{Error: ierr.Error(), Code: &code})
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// If encoding fails, logs the error and sends a plain text response
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
