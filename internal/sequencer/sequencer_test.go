package sequencer

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/football-team-service/internal/card"
	"github.com/preston-bernstein/football-team-service/internal/domain/fixtures"
	"github.com/preston-bernstein/football-team-service/internal/domain/players"
	"github.com/preston-bernstein/football-team-service/internal/domain/teams"
	"github.com/preston-bernstein/football-team-service/internal/metrics"
	"github.com/preston-bernstein/football-team-service/internal/providers"
	"github.com/preston-bernstein/football-team-service/internal/providers/fixture"
	"github.com/preston-bernstein/football-team-service/internal/resolver"
	"github.com/preston-bernstein/football-team-service/internal/testutil"
)

func newSequencer(p providers.DataProvider, rec *metrics.Recorder) *Sequencer {
	return New(Config{
		Provider: p,
		Builder:  card.NewBuilder(card.Options{ProxyURL: "https://images.weserv.nl/", PlaceholderURL: "placeholder"}),
		Recorder: rec,
	})
}

func TestRunEndToEndWithFixtureData(t *testing.T) {
	rec := metrics.NewRecorder()
	seq := newSequencer(fixture.New(), rec)
	sink := &Collector{}

	out := seq.Run(context.Background(), "Real Madrid", sink)

	require.NoError(t, out.Err)
	assert.Equal(t, StatusReady, out.Status)
	assert.Equal(t, StageReady, out.Stage)
	assert.Equal(t, uint64(1), out.Generation)
	require.NotNil(t, out.Card)

	c := out.Card
	assert.Equal(t, "133738", c.TeamID)
	assert.Equal(t, "Real Madrid", c.Header.Name)
	assert.Equal(t, "Stadium: Santiago Bernabéu", c.Header.Stadium)
	assert.Contains(t, c.Background, "https://images.weserv.nl/?url=www.thesportsdb.com")
	require.NotNil(t, c.Next)
	assert.Equal(t, "Barcelona", c.Next.Opponent)
	assert.Equal(t, []card.Letter{card.Win, card.Loss, card.Draw, card.Win, card.Win}, card.Letters(c.Form))
	assert.Equal(t, "Carlo Ancelotti", c.Bio.Manager)

	require.Len(t, c.Squad, card.SquadLimit)
	for i := 1; i < len(c.Squad); i++ {
		assert.LessOrEqual(t, c.Squad[i-1].Rank, c.Squad[i].Rank)
	}
	assert.Equal(t, "Andriy Lunin", c.Squad[0].Name)
	assert.Equal(t, "Kepa Arrizabalaga", c.Squad[1].Name)
	assert.Equal(t, "Thibaut Courtois", c.Squad[2].Name)
	assert.Equal(t, "Antonio Rüdiger", c.Squad[3].Name)
	assert.Equal(t, "Arda Güler", c.Squad[10].Name)
	assert.Equal(t, "Brahim Díaz", c.Squad[11].Name)

	assert.Equal(t, []EventType{EventLoading, EventHeader, EventNext, EventForm, EventBio, EventSquad}, sink.Types())
	for _, ev := range sink.Events() {
		assert.Equal(t, uint64(1), ev.Generation)
	}
	assert.Equal(t, 1, rec.Runs(string(StatusReady)))
	assert.Equal(t, 1, rec.Resolutions(string(resolver.RuleExact)))
}

func TestRunEventStagesAndPayloads(t *testing.T) {
	stub := testutil.NewStubProvider()
	stub.Teams["Arsenal"] = []teams.Team{{ID: "1", Name: "Arsenal", Stadium: "Emirates"}}
	stub.Last = []fixtures.Event{{HomeTeam: "Arsenal", AwayTeam: "Spurs", HomeScore: intPtr(1), AwayScore: intPtr(0)}}
	stub.Roster = []players.Player{{Name: "Saka", Position: "Right Winger"}}
	sink := &Collector{}

	out := newSequencer(stub, nil).Run(context.Background(), "  Arsenal  ", sink)
	require.Equal(t, StatusReady, out.Status)

	events := sink.Events()
	require.Len(t, events, 6)
	assert.Equal(t, StageSearching, events[0].Stage)
	assert.Equal(t, "Arsenal", events[0].Query)
	assert.Equal(t, MsgLoading, events[0].Message)
	assert.Equal(t, StageResolved, events[1].Stage)
	assert.Equal(t, "Stadium: Emirates", events[1].Header.Stadium)
	assert.Equal(t, StageFetchingNext, events[2].Stage)
	assert.Equal(t, StageFetchingForm, events[3].Stage)
	assert.Equal(t, StageFetchingForm, events[4].Stage)
	require.NotNil(t, events[4].Bio)
	assert.Equal(t, StageFetchingSquad, events[5].Stage)
	require.Len(t, events[5].Squad, 1)
	assert.Equal(t, "placeholder", events[5].Squad[0].Photo)
}

func TestEmptyNextFixturesContinuesChain(t *testing.T) {
	stub := testutil.NewStubProvider()
	stub.Teams["Arsenal"] = []teams.Team{{ID: "1", Name: "Arsenal"}}
	sink := &Collector{}

	out := newSequencer(stub, nil).Run(context.Background(), "Arsenal", sink)

	assert.Equal(t, StatusReady, out.Status)
	assert.Nil(t, out.Card.Next)
	assert.Equal(t, 1, stub.Calls(providers.EndpointLastEvents))
	assert.Equal(t, 1, stub.Calls(providers.EndpointSquad))

	events := sink.Events()
	require.Len(t, events, 6)
	assert.Equal(t, MsgNoUpcoming, events[2].Message)
	assert.Equal(t, MsgNoRecent, events[3].Message)
	assert.Equal(t, MsgNoPlayers, events[5].Message)
}

func TestNoCandidatesFailsNotFoundWithoutFurtherLookups(t *testing.T) {
	stub := testutil.NewStubProvider()
	rec := metrics.NewRecorder()
	sink := &Collector{}

	out := newSequencer(stub, rec).Run(context.Background(), "zzznoteam", sink)

	assert.Equal(t, StatusFailed, out.Status)
	assert.Equal(t, StageSearching, out.Stage)
	assert.True(t, errors.Is(out.Err, ErrNotFound))
	assert.Equal(t, KindNotFound, KindOf(out.Err))
	assert.Equal(t, `No team found for "zzznoteam"`, out.Err.Error())

	assert.Equal(t, 1, stub.Calls(providers.EndpointSearchTeams))
	assert.Zero(t, stub.Calls(providers.EndpointNextEvents))
	assert.Zero(t, stub.Calls(providers.EndpointLastEvents))
	assert.Zero(t, stub.Calls(providers.EndpointSquad))

	assert.Equal(t, []EventType{EventLoading, EventError}, sink.Types())
	assert.Equal(t, `No team found for "zzznoteam"`, sink.Events()[1].Message)
	assert.Equal(t, 1, rec.Runs(string(StatusFailed)))
}

func TestNetworkFailureKeepsEarlierStages(t *testing.T) {
	stub := testutil.NewStubProvider()
	stub.Teams["Arsenal"] = []teams.Team{{ID: "1", Name: "Arsenal", Stadium: "Emirates"}}
	stub.ErrAt = providers.EndpointSquad
	stub.Err = &providers.StatusError{Provider: "stub", Endpoint: providers.EndpointSquad, StatusCode: 500}
	sink := &Collector{}

	out := newSequencer(stub, nil).Run(context.Background(), "Arsenal", sink)

	assert.Equal(t, StatusFailed, out.Status)
	assert.Equal(t, StageFetchingSquad, out.Stage)
	assert.True(t, errors.Is(out.Err, ErrNetwork))
	assert.False(t, errors.Is(out.Err, ErrNotFound))
	_, ok := providers.AsStatusError(out.Err)
	assert.True(t, ok)
	assert.Equal(t, "HTTP 500", out.Err.Error())
	assert.Equal(t, "Arsenal", out.Card.Header.Name)

	types := sink.Types()
	assert.Equal(t, []EventType{EventLoading, EventHeader, EventNext, EventForm, EventBio, EventError}, types)
	last := sink.Events()[len(types)-1]
	assert.Equal(t, KindNetwork, last.Kind)
	assert.Equal(t, "HTTP 500", last.Message)
}

func TestSearchTransportFailure(t *testing.T) {
	stub := testutil.NewStubProvider()
	stub.ErrAt = providers.EndpointSearchTeams
	stub.Err = errors.New("dial tcp: connection refused")

	out := newSequencer(stub, nil).Run(context.Background(), "Arsenal", nil)

	assert.Equal(t, KindNetwork, KindOf(out.Err))
	assert.Equal(t, "dial tcp: connection refused", out.Err.Error())
	assert.Zero(t, stub.Calls(providers.EndpointNextEvents))
}

func TestEmptyQueryDoesNotStartGeneration(t *testing.T) {
	stub := testutil.NewStubProvider()
	seq := newSequencer(stub, nil)
	sink := &Collector{}

	out := seq.Run(context.Background(), "   ", sink)

	assert.Equal(t, StatusFailed, out.Status)
	assert.True(t, errors.Is(out.Err, ErrEmptyQuery))
	assert.Zero(t, out.Generation)
	assert.Zero(t, seq.Generation())
	assert.Empty(t, sink.Events())
	assert.Zero(t, stub.Calls(providers.EndpointSearchTeams))
}

func TestSupersededRunIsAbandonedSilently(t *testing.T) {
	stub := testutil.NewStubProvider()
	stub.Teams["slow"] = []teams.Team{{ID: "9", Name: "Slow FC"}}
	stub.Teams["Arsenal"] = []teams.Team{{ID: "1", Name: "Arsenal"}}
	gate := make(chan struct{})
	stub.Gates[testutil.GateKey(providers.EndpointSearchTeams, "slow")] = gate
	stub.Entered = make(chan string, 1)
	seq := newSequencer(stub, nil)

	staleSink := &Collector{}
	done := make(chan Outcome, 1)
	go func() {
		done <- seq.Run(context.Background(), "slow", staleSink)
	}()
	require.Equal(t, testutil.GateKey(providers.EndpointSearchTeams, "slow"), <-stub.Entered)

	freshSink := &Collector{}
	fresh := seq.Run(context.Background(), "Arsenal", freshSink)
	require.Equal(t, StatusReady, fresh.Status)
	assert.Equal(t, uint64(2), fresh.Generation)

	close(gate)
	stale := <-done

	assert.Equal(t, StatusAbandoned, stale.Status)
	assert.Equal(t, uint64(1), stale.Generation)
	assert.NoError(t, stale.Err)
	assert.Equal(t, []EventType{EventLoading}, staleSink.Types())
	assert.Equal(t, 1, stub.Calls(providers.EndpointNextEvents), "stale run must not issue further lookups")
	assert.Len(t, freshSink.Events(), 6)
}

func TestSupersededWhileLaterLookupPending(t *testing.T) {
	cases := []struct {
		name      string
		endpoint  string
		seen      []EventType
		// lookups the stale run must never reach
		untouched []string
	}{
		{
			name:      "next fixture",
			endpoint:  providers.EndpointNextEvents,
			seen:      []EventType{EventLoading, EventHeader},
			untouched: []string{providers.EndpointLastEvents, providers.EndpointSquad},
		},
		{
			name:      "recent form",
			endpoint:  providers.EndpointLastEvents,
			seen:      []EventType{EventLoading, EventHeader, EventNext},
			untouched: []string{providers.EndpointSquad},
		},
		{
			name:     "squad",
			endpoint: providers.EndpointSquad,
			seen:     []EventType{EventLoading, EventHeader, EventNext, EventForm, EventBio},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := testutil.NewStubProvider()
			stub.Teams["slow"] = []teams.Team{{ID: "9", Name: "Slow FC"}}
			stub.Teams["Arsenal"] = []teams.Team{{ID: "1", Name: "Arsenal"}}
			stub.Last = []fixtures.Event{testutil.SampleResult("Arsenal", "Chelsea", 2, 0)}
			stub.Roster = testutil.SampleSquad(3)
			gate := make(chan struct{})
			stub.Gates[testutil.GateKey(tc.endpoint, "9")] = gate
			stub.Entered = make(chan string, 1)
			seq := newSequencer(stub, nil)

			staleSink := &Collector{}
			done := make(chan Outcome, 1)
			go func() {
				done <- seq.Run(context.Background(), "slow", staleSink)
			}()
			require.Equal(t, testutil.GateKey(tc.endpoint, "9"), <-stub.Entered)

			freshSink := &Collector{}
			fresh := seq.Run(context.Background(), "Arsenal", freshSink)
			require.Equal(t, StatusReady, fresh.Status)
			assert.Len(t, freshSink.Events(), 6)

			before := map[string]int{}
			for _, ep := range tc.untouched {
				before[ep] = stub.Calls(ep)
			}
			close(gate)
			stale := <-done

			assert.Equal(t, StatusAbandoned, stale.Status)
			assert.Equal(t, uint64(1), stale.Generation)
			assert.NoError(t, stale.Err)
			assert.Equal(t, tc.seen, staleSink.Types())
			for _, ep := range tc.untouched {
				assert.Equal(t, before[ep], stub.Calls(ep), "stale run reached %s", ep)
			}
			for _, ev := range freshSink.Events() {
				assert.Equal(t, uint64(2), ev.Generation)
			}
		})
	}
}

func TestSupersededFailureIsSuppressed(t *testing.T) {
	stub := testutil.NewStubProvider()
	stub.ErrAt = providers.EndpointSearchTeams
	stub.Err = errors.New("boom")
	gate := make(chan struct{})
	stub.Gates[testutil.GateKey(providers.EndpointSearchTeams, "slow")] = gate
	stub.Entered = make(chan string, 1)
	seq := newSequencer(stub, nil)

	staleSink := &Collector{}
	done := make(chan Outcome, 1)
	go func() {
		done <- seq.Run(context.Background(), "slow", staleSink)
	}()
	<-stub.Entered

	seq.Run(context.Background(), "other", nil)
	close(gate)
	stale := <-done

	assert.Equal(t, StatusAbandoned, stale.Status)
	assert.NoError(t, stale.Err)
	assert.NotContains(t, staleSink.Types(), EventError)
}

func TestConcurrentRunsDeliverNonDecreasingGenerations(t *testing.T) {
	seq := newSequencer(fixture.New(), nil)

	var mu sync.Mutex
	var seen []uint64
	sink := SinkFunc(func(ev Event) {
		mu.Lock()
		seen = append(seen, ev.Generation)
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seq.Run(context.Background(), "Arsenal", sink)
		}()
	}
	wg.Wait()

	require.NotEmpty(t, seen)
	for i := 1; i < len(seen); i++ {
		require.LessOrEqual(t, seen[i-1], seen[i], "event for generation %d delivered after %d", seen[i], seen[i-1])
	}
	assert.Equal(t, uint64(20), seq.Generation())
	assert.Equal(t, uint64(20), seen[len(seen)-1])
}

func intPtr(v int) *int { return &v }

func TestStartClaimsGenerationBeforeRunning(t *testing.T) {
	stub := testutil.NewStubProvider()
	stub.Teams["Arsenal"] = []teams.Team{testutil.SampleTeam("1", "Arsenal")}
	seq := newSequencer(stub, nil)

	first := seq.Start(context.Background(), "Arsenal", &Collector{})
	assert.Equal(t, uint64(1), seq.Generation())
	sink := &Collector{}
	second := seq.Start(context.Background(), "Arsenal", sink)
	assert.Equal(t, uint64(2), seq.Generation())
	assert.Zero(t, stub.Calls(providers.EndpointSearchTeams), "Start must not perform lookups")

	assert.Equal(t, StatusAbandoned, first().Status)
	out := second()
	assert.Equal(t, StatusReady, out.Status)
	assert.Equal(t, uint64(2), out.Generation)
	assert.Len(t, sink.Events(), 6)

	empty := seq.Start(context.Background(), " ", nil)
	assert.Equal(t, uint64(2), seq.Generation())
	assert.Equal(t, KindEmptyQuery, KindOf(empty().Err))
}
