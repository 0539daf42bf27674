package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/preston-bernstein/football-team-service/internal/render"
	"github.com/preston-bernstein/football-team-service/internal/sequencer"
)

func newShowCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "show <team name...>",
		Short: "Render the full card for one team",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := loadSettings(v)
			logger := s.logger(cmd.ErrOrStderr())
			seq := sequencer.New(s.sequencerConfig(logger, nil))

			out := seq.Run(cmd.Context(), strings.Join(args, " "), sequencer.Discard)
			if out.Status != sequencer.StatusReady {
				return out.Err
			}

			w := cmd.OutOrStdout()
			if s.Output == outputJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out.Card)
			}
			_, err := fmt.Fprintln(w, render.New(w).Card(out.Card))
			return err
		},
	}
}
