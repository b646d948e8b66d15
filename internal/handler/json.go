// Package handler maps HTTP requests onto service calls and service
// results back onto the status/body contract.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/johndosdos/micropost/internal/service"
	"github.com/johndosdos/micropost/internal/storage"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// writeFailure maps a service error onto the status contract: rejected
// input is 400, bad credentials are 401, absence is 200 with an empty body
// (never 404), and anything else is a store failure worth a 500. Failure
// bodies are always empty.
func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrRejected):
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, service.ErrUnauthenticated):
		w.WriteHeader(http.StatusUnauthorized)
	case errors.Is(err, storage.ErrNotFound):
		w.WriteHeader(http.StatusOK)
	default:
		slog.ErrorContext(r.Context(), "storage failure",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}
