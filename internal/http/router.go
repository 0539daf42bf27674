package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/football-team-service/internal/http/handlers"
	"github.com/preston-bernstein/football-team-service/internal/http/middleware"
	"github.com/preston-bernstein/football-team-service/internal/metrics"
)

// NewRouter registers HTTP routes on a gorilla/mux router with request logging
// and metrics applied to every matched route.
func NewRouter(handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Logging(logger, recorder))

	r.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)
	r.HandleFunc("/ready", handler.Ready).Methods(nethttp.MethodGet)
	r.HandleFunc("/teams/card", handler.TeamCard).Methods(nethttp.MethodGet)
	r.HandleFunc("/ws", handler.TeamStream).Methods(nethttp.MethodGet)

	r.NotFoundHandler = nethttp.HandlerFunc(handler.NotFound)
	r.MethodNotAllowedHandler = nethttp.HandlerFunc(handler.MethodNotAllowed)
	return r
}
