package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tankar/quote_backend/internal/domain/quote"
	"tankar/quote_backend/internal/infra/sessions"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr maps domain errors onto the HTTP surface: validation failures are
// 422, unknown sessions 404, unmet export preconditions 409 with a
// corrective prompt.
func writeErr(w http.ResponseWriter, err error) {
	var ve *quote.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: ve.Error()})
	case errors.Is(err, sessions.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "session not found"})
	case errors.Is(err, quote.ErrNoItems):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "add at least one item before exporting"})
	case errors.Is(err, quote.ErrHeaderIncomplete):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "fill in client and consultant names before exporting"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
