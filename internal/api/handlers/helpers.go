package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"hotel-search-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, log *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("encode response failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, log *zap.Logger, status int, msg string) {
	writeJSON(w, r, log, status, map[string]string{"error": msg})
}

// writeDomainError maps the core's error kinds onto transport status codes:
// invalid input 400, missing identity 404, duplicate identity 409, anything
// else a generic 500 (the details go to the log, not the client).
func writeDomainError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument), errors.Is(err, domain.ErrOutOfRange):
		writeError(w, r, log, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, log, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, r, log, http.StatusConflict, err.Error())
	default:
		log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		writeError(w, r, log, http.StatusInternalServerError, "internal server error")
	}
}
