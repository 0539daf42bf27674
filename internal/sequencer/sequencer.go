// Package sequencer runs the dependent lookup chain behind a team card:
// search, resolve, next fixture, recent form and squad. Each run is tagged
// with a generation; starting a run supersedes every earlier one, and results
// of a superseded run are dropped on arrival.
package sequencer

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/preston-bernstein/football-team-service/internal/card"
	"github.com/preston-bernstein/football-team-service/internal/logging"
	"github.com/preston-bernstein/football-team-service/internal/metrics"
	"github.com/preston-bernstein/football-team-service/internal/providers"
	"github.com/preston-bernstein/football-team-service/internal/resolver"
)

// Config wires a Sequencer to its collaborators. Logger and Recorder are optional.
type Config struct {
	Provider providers.DataProvider
	Builder  card.Builder
	Logger   *slog.Logger
	Recorder *metrics.Recorder
}

// Outcome is the terminal result of one Run.
type Outcome struct {
	Generation uint64
	Status     Status
	// Stage is the last stage reached; for failures, the stage that failed.
	Stage Stage
	// Card holds every section built before the run ended.
	Card *card.Card
	Err  error
}

// Sequencer is safe for concurrent use. Overlapping Runs supersede each other
// in start order.
type Sequencer struct {
	provider providers.DataProvider
	builder  card.Builder
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time

	mu   sync.Mutex
	live uint64
}

// New constructs a Sequencer.
func New(cfg Config) *Sequencer {
	return &Sequencer{
		provider: cfg.Provider,
		builder:  cfg.Builder,
		logger:   cfg.Logger,
		recorder: cfg.Recorder,
		now:      time.Now,
	}
}

// Generation returns the live generation; 0 before the first run.
func (s *Sequencer) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live
}

// Run resolves query and fetches its card sections in sequence, emitting one
// event per stage to sink. An empty query fails with KindEmptyQuery without
// starting a generation. ctx is passed to every lookup; superseding a run does
// not cancel its in-flight lookup.
func (s *Sequencer) Run(ctx context.Context, query string, sink Sink) Outcome {
	return s.Start(ctx, query, sink)()
}

// Start claims the run's generation before returning, superseding every
// earlier run, and returns the function that performs it. Callers handing
// runs to goroutines use Start so generations follow call order.
func (s *Sequencer) Start(ctx context.Context, query string, sink Sink) func() Outcome {
	q := strings.TrimSpace(query)
	if q == "" {
		out := Outcome{Status: StatusFailed, Stage: StageIdle, Err: &Error{Kind: KindEmptyQuery, Query: query}}
		return func() Outcome { return out }
	}
	if sink == nil {
		sink = Discard
	}

	start := s.now()
	r := &run{
		seq:   s,
		sink:  sink,
		query: q,
		gen:   s.advance(),
		card:  &card.Card{},
	}
	r.logger = logging.FromContext(ctx, s.logger)
	if r.logger != nil {
		r.logger = r.logger.With(slog.Uint64(logging.FieldGeneration, r.gen), slog.String(logging.FieldQuery, q))
	}

	return func() Outcome {
		out := r.execute(ctx)
		s.recorder.RecordRun(string(out.Status), s.now().Sub(start))
		r.logOutcome(out)
		return out
	}
}

func (s *Sequencer) advance() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live++
	return s.live
}

func (s *Sequencer) isLive(g uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live == g
}

// emit delivers ev when g is still live. The check and the delivery share the
// lock advance takes, so no event of g reaches sink once g+1 has started.
func (s *Sequencer) emit(g uint64, sink Sink, ev Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.live != g {
		return false
	}
	ev.Generation = g
	sink.Emit(ev)
	return true
}

type run struct {
	seq    *Sequencer
	sink   Sink
	query  string
	gen    uint64
	stage  Stage
	card   *card.Card
	logger *slog.Logger
}

func (r *run) execute(ctx context.Context) Outcome {
	seq := r.seq
	b := seq.builder

	r.stage = StageSearching
	if !r.emit(Event{Type: EventLoading, Query: r.query, Message: MsgLoading}) {
		return r.abandon()
	}
	candidates, err := seq.provider.SearchTeams(ctx, r.query)
	if !seq.isLive(r.gen) {
		return r.abandon()
	}
	if err != nil {
		return r.fail(KindNetwork, err)
	}
	if len(candidates) == 0 {
		return r.fail(KindNotFound, nil)
	}

	team, rule := resolver.ResolveWithRule(candidates, r.query)
	if rule == resolver.RuleNone {
		return r.fail(KindNotFound, nil)
	}
	seq.recorder.RecordResolution(string(rule))
	logging.Debug(r.logger, "team resolved",
		slog.String(logging.FieldTeamID, team.ID),
		slog.String(logging.FieldTeam, team.Name),
		slog.String(logging.FieldRule, string(rule)),
		slog.Int(logging.FieldCount, len(candidates)),
	)

	r.stage = StageResolved
	header := b.Header(team)
	r.card.TeamID = team.ID
	r.card.Header = header
	r.card.Background = b.Background(team)
	if !r.emit(Event{Type: EventHeader, Header: &header, Background: r.card.Background}) {
		return r.abandon()
	}

	r.stage = StageFetchingNext
	next, err := seq.provider.NextEvents(ctx, team.ID)
	if !seq.isLive(r.gen) {
		return r.abandon()
	}
	if err != nil {
		return r.fail(KindNetwork, err)
	}
	r.card.Next = b.NextMatch(team, next)
	ev := Event{Type: EventNext, Next: r.card.Next}
	if r.card.Next == nil {
		ev.Message = MsgNoUpcoming
	}
	if !r.emit(ev) {
		return r.abandon()
	}

	r.stage = StageFetchingForm
	last, err := seq.provider.LastEvents(ctx, team.ID)
	if !seq.isLive(r.gen) {
		return r.abandon()
	}
	if err != nil {
		return r.fail(KindNetwork, err)
	}
	r.card.Form = b.Form(team, last)
	ev = Event{Type: EventForm, Form: r.card.Form}
	if len(r.card.Form) == 0 {
		ev.Message = MsgNoRecent
	}
	if !r.emit(ev) {
		return r.abandon()
	}
	bio := b.Bio(team)
	r.card.Bio = bio
	if !r.emit(Event{Type: EventBio, Bio: &bio}) {
		return r.abandon()
	}

	r.stage = StageFetchingSquad
	logging.Debug(r.logger, "fetching squad",
		slog.String(logging.FieldTeamID, team.ID),
		slog.String(logging.FieldTeam, team.Name),
	)
	roster, err := seq.provider.Squad(ctx, team.ID)
	if !seq.isLive(r.gen) {
		return r.abandon()
	}
	if err != nil {
		return r.fail(KindNetwork, err)
	}
	r.card.Squad = b.Squad(roster)
	ev = Event{Type: EventSquad, Squad: r.card.Squad}
	if len(r.card.Squad) == 0 {
		ev.Message = MsgNoPlayers
	}
	if !r.emit(ev) {
		return r.abandon()
	}

	r.stage = StageReady
	return Outcome{Generation: r.gen, Status: StatusReady, Stage: StageReady, Card: r.card}
}

func (r *run) emit(ev Event) bool {
	ev.Stage = r.stage
	return r.seq.emit(r.gen, r.sink, ev)
}

func (r *run) fail(kind Kind, cause error) Outcome {
	err := &Error{Kind: kind, Query: r.query, Err: cause}
	failed := r.stage
	if !r.emit(Event{Type: EventError, Kind: kind, Message: err.Error()}) {
		return r.abandon()
	}
	return Outcome{Generation: r.gen, Status: StatusFailed, Stage: failed, Card: r.card, Err: err}
}

func (r *run) abandon() Outcome {
	return Outcome{Generation: r.gen, Status: StatusAbandoned, Stage: r.stage, Card: r.card}
}

func (r *run) logOutcome(out Outcome) {
	attrs := []any{slog.String(logging.FieldStage, string(out.Stage))}
	switch out.Status {
	case StatusReady:
		logging.Info(r.logger, "team card ready", append(attrs, slog.String(logging.FieldTeamID, out.Card.TeamID))...)
	case StatusFailed:
		logging.Warn(r.logger, "team card failed", append(attrs, "err", out.Err)...)
	default:
		logging.Debug(r.logger, "team card superseded", attrs...)
	}
}
