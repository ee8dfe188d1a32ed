package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/domain"
	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps network and validation errors to HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownBelief),
		errors.Is(err, domain.ErrUnknownJustification):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidValidity),
		errors.Is(err, service.ErrBeliefIDEmpty),
		errors.Is(err, service.ErrConclusionEmpty):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
