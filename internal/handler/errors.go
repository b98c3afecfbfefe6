package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pkordes/trip-planner/internal/api"
	"github.com/pkordes/trip-planner/internal/domain"
)

// writeJSON encodes v as the response body with the given status code.
// Encoding a nil value produces a JSON null body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError maps a domain error to the structured error envelope:
// validation errors → 422, not-found errors → 404, everything else → 500
// with code "store_error".
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		field := ve.Field
		writeJSON(w, http.StatusUnprocessableEntity, api.ErrorResponse{
			Error: api.ErrorDetail{Code: "validation_error", Message: ve.Message, Field: &field},
		})
		return
	}
	if errors.Is(err, domain.ErrValidation) {
		writeJSON(w, http.StatusUnprocessableEntity, api.ErrorResponse{
			Error: api.ErrorDetail{Code: "validation_error", Message: err.Error()},
		})
		return
	}

	var nfe *domain.NotFoundError
	if errors.As(err, &nfe) {
		writeJSON(w, http.StatusNotFound, api.ErrorResponse{
			Error: api.ErrorDetail{Code: "not_found", Message: nfe.Error()},
		})
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, api.ErrorResponse{
			Error: api.ErrorDetail{Code: "not_found", Message: "not found"},
		})
		return
	}

	// Storage failure: surfaced as-is, never retried here.
	slog.ErrorContext(r.Context(), "store error", "error", err, "path", r.URL.Path)
	writeJSON(w, http.StatusInternalServerError, api.ErrorResponse{
		Error: api.ErrorDetail{Code: "store_error", Message: err.Error()},
	})
}

// decodeJSON decodes the request body into dst. On failure it writes a 422
// validation response and reports false; the caller should just return.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, api.ErrorResponse{
			Error: api.ErrorDetail{Code: "validation_error", Message: "invalid request body: " + err.Error()},
		})
		return false
	}
	return true
}

// requiredID extracts the id from an IDRequest, writing a 422 response and
// reporting false when the field is absent.
func requiredID(w http.ResponseWriter, req api.IDRequest) (int64, bool) {
	if req.ID == nil {
		field := "id"
		writeJSON(w, http.StatusUnprocessableEntity, api.ErrorResponse{
			Error: api.ErrorDetail{Code: "validation_error", Message: "id is required", Field: &field},
		})
		return 0, false
	}
	return *req.ID, true
}
