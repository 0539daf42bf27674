package handlers

import (
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/football-team-service/internal/sequencer"
)

// Options wires a Handler.
type Options struct {
	// Sequencer configures the per-request and per-session sequencers.
	Sequencer sequencer.Config
	// DefaultQuery runs when a WebSocket session opens; empty disables it.
	DefaultQuery string
	Logger       *slog.Logger
	// Ready reports readiness for traffic; nil means always ready.
	Ready func() bool
}

// Handler wires HTTP routes to the team card sequencer.
type Handler struct {
	seqCfg       sequencer.Config
	defaultQuery string
	logger       *slog.Logger
	ready        func() bool
}

// NewHandler constructs a Handler.
func NewHandler(opts Options) *Handler {
	return &Handler{
		seqCfg:       opts.Sequencer,
		defaultQuery: opts.DefaultQuery,
		logger:       opts.Logger,
		ready:        opts.Ready,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.ready != nil && !h.ready() {
		writeError(w, r, http.StatusServiceUnavailable, "not ready", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// TeamCard resolves ?name= and returns the completed card. Each request runs
// on its own sequencer so concurrent clients never supersede each other.
func (h *Handler) TeamCard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)

	out := h.newSequencer().Run(r.Context(), r.URL.Query().Get("name"), sequencer.Discard)
	if out.Status != sequencer.StatusReady {
		status := statusForKind(sequencer.KindOf(out.Err))
		msg := sequencer.MsgLoadFailure
		if out.Err != nil {
			msg = out.Err.Error()
		}
		if logger != nil && status >= http.StatusInternalServerError {
			logger.Warn("team card failed", slog.String("stage", string(out.Stage)), "err", out.Err)
		}
		writeError(w, r, status, msg, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, out.Card, h.logger)
}

func (h *Handler) newSequencer() *sequencer.Sequencer {
	cfg := h.seqCfg
	if cfg.Logger == nil {
		cfg.Logger = h.logger
	}
	return sequencer.New(cfg)
}

// NotFound replies with the JSON error body for unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed replies with the JSON error body for known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}
