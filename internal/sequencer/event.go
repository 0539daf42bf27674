package sequencer

import (
	"sync"

	"github.com/preston-bernstein/football-team-service/internal/card"
)

// EventType names what an Event carries.
type EventType string

const (
	EventLoading EventType = "loading"
	EventHeader  EventType = "header"
	EventNext    EventType = "next"
	EventForm    EventType = "form"
	EventBio     EventType = "bio"
	EventSquad   EventType = "squad"
	EventError   EventType = "error"
)

// Display messages for empty sections and the loading signal.
const (
	MsgLoading     = "Loading…"
	MsgNoUpcoming  = "No upcoming matches found."
	MsgNoRecent    = "No recent matches found."
	MsgNoPlayers   = "No players found."
	MsgLoadFailure = "Failed to load team."
)

// Event is one stage result delivered to a Sink. Only the fields relevant to
// Type are set.
type Event struct {
	Generation uint64            `json:"generation"`
	Type       EventType         `json:"type"`
	Stage      Stage             `json:"stage"`
	Query      string            `json:"query,omitempty"`
	Header     *card.Header      `json:"header,omitempty"`
	Background string            `json:"background,omitempty"`
	Next       *card.NextMatch   `json:"next,omitempty"`
	Form       []card.FormEntry  `json:"form,omitempty"`
	Bio        *card.Bio         `json:"bio,omitempty"`
	Squad      []card.SquadEntry `json:"squad,omitempty"`
	Kind       Kind              `json:"kind,omitempty"`
	Message    string            `json:"message,omitempty"`
}

// Sink receives events for live generations. Emit is called while the
// sequencer holds its generation lock: it must not block indefinitely and must
// not call Run.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Event)

func (f SinkFunc) Emit(ev Event) {
	f(ev)
}

// Discard drops every event.
var Discard Sink = SinkFunc(func(Event) {})

// Collector records events in delivery order. Safe for concurrent use.
type Collector struct {
	mu     sync.Mutex
	events []Event
}

func (c *Collector) Emit(ev Event) {
	c.mu.Lock()
	c.events = append(c.events, ev)
	c.mu.Unlock()
}

// Events returns a copy of the recorded events.
func (c *Collector) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Types returns the recorded event types in order.
func (c *Collector) Types() []EventType {
	events := c.Events()
	out := make([]EventType, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Type)
	}
	return out
}
