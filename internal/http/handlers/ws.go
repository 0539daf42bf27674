package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/preston-bernstein/football-team-service/internal/logging"
	"github.com/preston-bernstein/football-team-service/internal/sequencer"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The stream is read-only public data; any origin may subscribe.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// clientMessage is the only frame a client sends.
type clientMessage struct {
	Query string `json:"query"`
}

// TeamStream upgrades to a WebSocket session. Every {"query": ...} frame starts
// a run that supersedes the session's previous one; stage events stream back
// tagged with their generation.
func (h *Handler) TeamStream(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error.
		logging.Warn(logger, "websocket upgrade failed", "err", err)
		return
	}

	recorder := h.seqCfg.Recorder
	recorder.RecordSession(1)
	defer recorder.RecordSession(-1)

	id := uuid.NewString()
	if logger != nil {
		logger = logger.With(slog.String(logging.FieldSessionID, id))
	}
	cfg := h.seqCfg
	cfg.Logger = logger

	s := &session{
		conn:   conn,
		seq:    sequencer.New(cfg),
		send:   make(chan sequencer.Event, sendBuffer),
		done:   make(chan struct{}),
		logger: logger,
	}
	logging.Info(logger, "websocket session opened")
	s.serve(logging.WithLogger(r.Context(), logger), h.defaultQuery)
	logging.Info(logger, "websocket session closed")
}

type session struct {
	conn   *websocket.Conn
	seq    *sequencer.Sequencer
	send   chan sequencer.Event
	done   chan struct{}
	logger *slog.Logger
	runs   sync.WaitGroup
}

// Emit queues ev for the writer. It gives up once the session is closing so a
// run never blocks the sequencer on a dead connection.
func (s *session) Emit(ev sequencer.Event) {
	select {
	case s.send <- ev:
	case <-s.done:
	}
}

func (s *session) serve(ctx context.Context, defaultQuery string) {
	ctx, cancel := context.WithCancel(ctx)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writePump()
	}()

	if defaultQuery != "" {
		s.start(ctx, defaultQuery)
	}
	s.readPump(ctx)

	close(s.done)
	cancel()
	s.runs.Wait()
	<-writerDone
	s.conn.Close()
}

// start supersedes the running query before returning, so runs follow frame order.
func (s *session) start(ctx context.Context, query string) {
	run := s.seq.Start(ctx, query, s)
	s.runs.Add(1)
	go func() {
		defer s.runs.Done()
		out := run()
		if out.Generation == 0 && out.Err != nil {
			// rejected before a generation started, so nothing was emitted
			s.Emit(sequencer.Event{
				Generation: s.seq.Generation(),
				Type:       sequencer.EventError,
				Stage:      out.Stage,
				Kind:       sequencer.KindOf(out.Err),
				Message:    out.Err.Error(),
			})
		}
	}()
}

func (s *session) readPump(ctx context.Context) {
	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Warn(s.logger, "websocket read failed", "err", err)
			}
			return
		}
		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.Emit(sequencer.Event{
				Generation: s.seq.Generation(),
				Type:       sequencer.EventError,
				Message:    "invalid message: expected {\"query\": \"...\"}",
			})
			continue
		}
		s.start(ctx, msg.Query)
	}
}

func (s *session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case ev := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteJSON(ev); err != nil {
				logging.Debug(s.logger, "websocket write failed", "err", err)
				// unblocks readPump so the session tears down
				s.conn.Close()
				s.drain()
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.conn.Close()
				s.drain()
				return
			}
		case <-s.done:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

// drain discards queued events until the session closes.
func (s *session) drain() {
	for {
		select {
		case <-s.send:
		case <-s.done:
			return
		}
	}
}
