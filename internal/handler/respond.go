package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/lumiere-dining/api/internal/listing"
	"github.com/lumiere-dining/api/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeValidationError surfaces per-field messages so forms can place
// them inline next to the offending field.
func writeValidationError(w http.ResponseWriter, errs service.FieldErrors) {
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":  "validation failed",
		"fields": errs,
	})
}

// writeServiceError maps a service error to a response, unpacking
// FieldErrors into a validation response.
func writeServiceError(w http.ResponseWriter, err error) {
	var fieldErrs service.FieldErrors
	if errors.As(err, &fieldErrs) {
		writeValidationError(w, fieldErrs)
		return
	}
	switch {
	case errors.Is(err, service.ErrReservationNotFound):
		writeError(w, http.StatusNotFound, "reservation not found")
	case errors.Is(err, service.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "invalid status")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// pageParams reads the shared list query params: page and page_size.
func pageParams(r *http.Request) (page, pageSize int) {
	return queryInt(r, "page", 1), queryInt(r, "page_size", listing.DefaultPageSize)
}
