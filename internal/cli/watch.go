package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/preston-bernstein/football-team-service/internal/config"
	"github.com/preston-bernstein/football-team-service/internal/logging"
	"github.com/preston-bernstein/football-team-service/internal/render"
	"github.com/preston-bernstein/football-team-service/internal/sequencer"
)

func newWatchCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream cards as queries are typed, one per line",
		Long: "watch runs the starting query, then reads one team name per line from stdin.\n" +
			"Each line supersedes the previous lookup; stage results print as they arrive.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := loadSettings(v)
			logger := s.logger(cmd.ErrOrStderr())
			seq := sequencer.New(s.sequencerConfig(logger, nil))
			sink := newLineSink(cmd.OutOrStdout(), s.Output)

			w := &watcher{seq: seq, sink: sink}
			w.start(cmd.Context(), v.GetString(keyQuery))
			err := w.readQueries(cmd.Context(), cmd.InOrStdin())
			w.wait()
			logging.Debug(logger, "watch finished", slog.Uint64(logging.FieldGeneration, seq.Generation()))
			return err
		},
	}
	cmd.Flags().String(keyQuery, config.DefaultTeamQuery, "query to run before reading stdin; empty skips it")
	_ = v.BindPFlag(keyQuery, cmd.Flags().Lookup(keyQuery))
	return cmd
}

type watcher struct {
	seq  *sequencer.Sequencer
	sink sequencer.Sink
	runs sync.WaitGroup
}

func (w *watcher) start(ctx context.Context, query string) {
	run := w.seq.Start(ctx, query, w.sink)
	w.runs.Add(1)
	go func() {
		defer w.runs.Done()
		out := run()
		if out.Generation == 0 && out.Err != nil {
			w.sink.Emit(sequencer.Event{
				Type:    sequencer.EventError,
				Stage:   out.Stage,
				Kind:    sequencer.KindOf(out.Err),
				Message: out.Err.Error(),
			})
		}
	}()
}

func (w *watcher) readQueries(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		w.start(ctx, scanner.Text())
	}
	return scanner.Err()
}

func (w *watcher) wait() {
	w.runs.Wait()
}

// lineSink serializes rendering across runs. The sequencer already fences
// live events; this also covers errors reported outside any generation.
type lineSink struct {
	mu     sync.Mutex
	w      io.Writer
	text   *render.Renderer
	asJSON bool
}

func newLineSink(w io.Writer, output string) *lineSink {
	return &lineSink{w: w, text: render.New(w), asJSON: strings.EqualFold(output, outputJSON)}
}

func (s *lineSink) Emit(ev sequencer.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.asJSON {
		_ = json.NewEncoder(s.w).Encode(ev)
		return
	}
	s.text.Emit(ev)
}
