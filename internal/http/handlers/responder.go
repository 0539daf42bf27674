package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/football-team-service/internal/http/middleware"
	"github.com/preston-bernstein/football-team-service/internal/http/requestutil"
	"github.com/preston-bernstein/football-team-service/internal/logging"
	"github.com/preston-bernstein/football-team-service/internal/sequencer"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// statusForKind maps a failed run to its HTTP status.
func statusForKind(kind sequencer.Kind) int {
	switch kind {
	case sequencer.KindEmptyQuery:
		return http.StatusBadRequest
	case sequencer.KindNotFound:
		return http.StatusNotFound
	case sequencer.KindNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
